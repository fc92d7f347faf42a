package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/inventory/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.Empty(t, cfg.Warehouses)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: text
metrics:
  enabled: true
  port: 9191
persistence:
  dir: /tmp/inventory
warehouses:
  - name: Mumbai
    products:
      - id: P-1001
        name: Laptop
        quantity: 0
        reorder_threshold: 5
  - name: Delhi
    products:
      - id: P-1001
        name: Laptop
        quantity: 3
        reorder_threshold: 5
      - id: P-2002
        name: Mouse
        quantity: 25
        reorder_threshold: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9191, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path) // default kept
	assert.Equal(t, "/tmp/inventory", cfg.Persistence.Dir)

	require.Len(t, cfg.Warehouses, 2)
	assert.Equal(t, "Mumbai", cfg.Warehouses[0].Name)
	require.Len(t, cfg.Warehouses[1].Products, 2)
	assert.Equal(t, int64(25), cfg.Warehouses[1].Products[1].Quantity)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err))
	assert.Nil(t, cfg)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "log: [unclosed")

	cfg, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Warehouses = []WarehouseConfig{
			{
				Name: "Mumbai",
				Products: []ProductConfig{
					{ID: "P-1001", Name: "Laptop", Quantity: 10, ReorderThreshold: 5},
				},
			},
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"bad metrics port", func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Port = -1 }, true},
		{"metrics disabled ignores port", func(c *Config) { c.Metrics.Enabled = false; c.Metrics.Port = -1 }, false},
		{"blank warehouse name", func(c *Config) { c.Warehouses[0].Name = "" }, true},
		{"duplicate warehouse", func(c *Config) {
			c.Warehouses = append(c.Warehouses, WarehouseConfig{Name: "Mumbai"})
		}, true},
		{"blank product id", func(c *Config) { c.Warehouses[0].Products[0].ID = "" }, true},
		{"duplicate product", func(c *Config) {
			c.Warehouses[0].Products = append(c.Warehouses[0].Products,
				ProductConfig{ID: "P-1001", Name: "Other", Quantity: 1})
		}, true},
		{"negative quantity", func(c *Config) { c.Warehouses[0].Products[0].Quantity = -1 }, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := valid()
			test.mutate(cfg)

			err := cfg.Validate()
			if test.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalid(err))
				return
			}
			require.NoError(t, err)
		})
	}
}
