package registry

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/ethereum-optimism/infra/op-selector/types"
	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/yaml.v3"
)

// Registry holds the suites read from a catalog manifest, in catalog order
type Registry struct {
	suites []types.SuiteInfo
	mu     sync.RWMutex
}

// Config contains registry configuration
type Config struct {
	Log         log.Logger
	CatalogFile string
}

// NewRegistry creates a new registry instance
func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.CatalogFile == "" {
		return nil, fmt.Errorf("catalog file is required")
	}
	if cfg.Log == nil {
		cfg.Log = log.New()
		cfg.Log.Error("No logger provided, using default")
	}

	r := &Registry{}

	if err := r.loadCatalog(cfg.CatalogFile); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	cfg.Log.Debug("Registry loaded", "len(suites)", len(r.suites))

	return r, nil
}

func (r *Registry) loadCatalog(cfgPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog %s: %w", cfgPath, err)
	}

	r.suites = catalog.Suites()
	return nil
}

// GetSuites returns a copy of all suites in catalog order
func (r *Registry) GetSuites() []types.SuiteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.suites)
}

// loadConfig loads a catalog manifest from a file
func loadConfig(path string) (*types.CatalogConfig, error) {
	log.Debug("Reading catalog file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var cfg types.CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	return &cfg, nil
}
