package types

import (
	"errors"
	"fmt"
	"strings"
)

// CatalogConfig represents a complete suite catalog manifest.
// Libraries, modules and suites are sequences so that catalog order
// survives a round trip through YAML.
type CatalogConfig struct {
	Libraries []LibraryConfig `yaml:"libraries"`
}

// LibraryConfig is the top-level grouping of suites
type LibraryConfig struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Modules     []ModuleConfig `yaml:"modules"`
}

// ModuleConfig groups related suites within a library
type ModuleConfig struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Manual      bool          `yaml:"manual,omitempty"` // Default for every suite in the module
	Suites      []SuiteConfig `yaml:"suites"`
}

// SuiteConfig represents a single suite entry
type SuiteConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Package     string `yaml:"package,omitempty"`
	Manual      *bool  `yaml:"manual,omitempty"`
}

// Validate checks the catalog for empty or ambiguous names.
// Every problem found is reported, not only the first.
func (c *CatalogConfig) Validate() error {
	var errs []error
	seen := make(map[string]bool)

	for li, lib := range c.Libraries {
		if err := validateComponent("library", lib.Name); err != nil {
			errs = append(errs, fmt.Errorf("libraries[%d]: %w", li, err))
		}
		for mi, mod := range lib.Modules {
			if err := validateComponent("module", mod.Name); err != nil {
				errs = append(errs, fmt.Errorf("library %q modules[%d]: %w", lib.Name, mi, err))
			}
			for si, suite := range mod.Suites {
				if err := validateComponent("suite", suite.Name); err != nil {
					errs = append(errs, fmt.Errorf("module %q suites[%d]: %w", mod.Name, si, err))
					continue
				}
				fullName := JoinFullName(lib.Name, mod.Name, suite.Name)
				if seen[fullName] {
					errs = append(errs, fmt.Errorf("duplicate suite %q", fullName))
				}
				seen[fullName] = true
			}
		}
	}

	return errors.Join(errs...)
}

// Suites flattens the catalog into suite descriptors, preserving catalog order
func (c *CatalogConfig) Suites() []SuiteInfo {
	var suites []SuiteInfo
	for _, lib := range c.Libraries {
		for _, mod := range lib.Modules {
			for _, suite := range mod.Suites {
				manual := mod.Manual
				if suite.Manual != nil {
					manual = *suite.Manual
				}
				suites = append(suites, SuiteInfo{
					SuiteName:   suite.Name,
					ModuleName:  mod.Name,
					LibraryName: lib.Name,
					IsManual:    manual,
					Package:     suite.Package,
					Description: suite.Description,
				})
			}
		}
	}
	return suites
}

func validateComponent(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s name cannot be empty", kind)
	}
	if strings.Contains(name, ".") {
		return fmt.Errorf("%s name '%s' cannot contain '.' character", kind, name)
	}
	return nil
}
