package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360/inventory/errors"
)

// Config is the complete demo-driver configuration: logging, optional
// metrics exposition, snapshot persistence, and the warehouses to seed.
type Config struct {
	Log         LogConfig         `yaml:"log"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Warehouses  []WarehouseConfig `yaml:"warehouses"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// MetricsConfig controls the Prometheus exposition server.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// PersistenceConfig locates the snapshot files.
type PersistenceConfig struct {
	Dir string `yaml:"dir"`
}

// WarehouseConfig seeds one warehouse with its initial products.
type WarehouseConfig struct {
	Name     string          `yaml:"name"`
	Products []ProductConfig `yaml:"products"`
}

// ProductConfig seeds one product.
type ProductConfig struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Quantity         int64  `yaml:"quantity"`
	ReorderThreshold int64  `yaml:"reorder_threshold"`
}

// Default returns a configuration with sensible defaults and no
// warehouses.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
		Persistence: PersistenceConfig{
			Dir: os.TempDir(),
		},
	}
}

// Load reads and validates a YAML configuration file. Missing fields keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapTransient(err, "config", "Load", "read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "parse YAML")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency: valid log
// settings, a usable metrics port, and unique warehouse and product
// identities with non-negative stock numbers.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.WrapInvalid(
			fmt.Errorf("%w: unknown log level %q", errors.ErrInvalidArgument, c.Log.Level),
			"config", "Validate", "log level validation")
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return errors.WrapInvalid(
			fmt.Errorf("%w: unknown log format %q", errors.ErrInvalidArgument, c.Log.Format),
			"config", "Validate", "log format validation")
	}

	if c.Metrics.Enabled && (c.Metrics.Port < 1 || c.Metrics.Port > 65535) {
		return errors.WrapInvalid(
			fmt.Errorf("%w: metrics port %d out of range", errors.ErrInvalidArgument, c.Metrics.Port),
			"config", "Validate", "metrics port validation")
	}

	seenWarehouses := make(map[string]bool)
	for _, wh := range c.Warehouses {
		if wh.Name == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: warehouse name is required", errors.ErrInvalidArgument),
				"config", "Validate", "warehouse name validation")
		}
		if seenWarehouses[wh.Name] {
			return errors.WrapInvalid(
				fmt.Errorf("%w: warehouse %q configured twice", errors.ErrDuplicateID, wh.Name),
				"config", "Validate", "warehouse uniqueness validation")
		}
		seenWarehouses[wh.Name] = true

		seenProducts := make(map[string]bool)
		for _, p := range wh.Products {
			if p.ID == "" || p.Name == "" {
				return errors.WrapInvalid(
					fmt.Errorf("%w: product id and name are required in warehouse %q",
						errors.ErrInvalidArgument, wh.Name),
					"config", "Validate", "product identity validation")
			}
			if seenProducts[p.ID] {
				return errors.WrapInvalid(
					fmt.Errorf("%w: product %q configured twice in warehouse %q",
						errors.ErrDuplicateID, p.ID, wh.Name),
					"config", "Validate", "product uniqueness validation")
			}
			seenProducts[p.ID] = true

			if p.Quantity < 0 || p.ReorderThreshold < 0 {
				return errors.WrapInvalid(
					fmt.Errorf("%w: product %q in warehouse %q has negative stock numbers",
						errors.ErrInvalidArgument, p.ID, wh.Name),
					"config", "Validate", "product quantity validation")
			}
		}
	}

	return nil
}
