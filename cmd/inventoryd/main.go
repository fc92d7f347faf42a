// Package main implements the entry point for the inventoryd demo driver.
// It seeds warehouses from configuration, exercises scripted and concurrent
// stock movements with low-stock alerting, round-trips a warehouse through
// the filestore, and prints a central inventory report.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/c360/inventory/alert"
	"github.com/c360/inventory/config"
	"github.com/c360/inventory/errors"
	"github.com/c360/inventory/filestore"
	"github.com/c360/inventory/metric"
	"github.com/c360/inventory/registry"
	"github.com/c360/inventory/warehouse"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "inventoryd"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	// Run application with proper error handling
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}

	if cliCfg.ShowHelp {
		printHelp()
		return nil
	}

	cfg, err := loadConfig(cliCfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	// CLI flags override config-file log settings
	logLevel := cfg.Log.Level
	if cliCfg.LogLevel != "" {
		logLevel = cliCfg.LogLevel
	}
	logFormat := cfg.Log.Format
	if cliCfg.LogFormat != "" {
		logFormat = cliCfg.LogFormat
	}

	logger := setupLogger(logLevel, logFormat)
	slog.SetDefault(logger)

	logger.Info("Starting inventory demo driver",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cliCfg.ConfigPath,
		"warehouses", len(cfg.Warehouses))

	metricsRegistry := metric.NewMetricsRegistry()

	if cfg.Metrics.Enabled {
		server := metric.NewServer(cfg.Metrics.Port, cfg.Metrics.Path, metricsRegistry)
		go func() {
			if err := server.Start(); err != nil {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() { _ = server.Stop() }()
		logger.Info("Metrics server listening", "addr", server.Address(), "path", server.Path())
	}

	// Every low-stock event goes to the log and, when the journal file can
	// be opened, to a persistent alert journal as well.
	var journal io.Writer
	journalPath := filepath.Join(cfg.Persistence.Dir, "alerts.log")
	journalFile, err := os.OpenFile(journalPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("Alert journal unavailable", "path", journalPath, "error", err)
	} else {
		journal = journalFile
		defer func() { _ = journalFile.Close() }()
	}

	reg := registry.New()
	warehouses, err := buildWarehouses(cfg, metricsRegistry, logger, journal, reg)
	if err != nil {
		return fmt.Errorf("seed warehouses: %w", err)
	}

	if len(warehouses) == 0 {
		logger.Warn("No warehouses configured, nothing to demonstrate")
		return nil
	}

	d := &demo{
		logger:  logger,
		metrics: metricsRegistry.CoreMetrics(),
	}
	d.runScripted(warehouses[0])
	d.runConcurrent(warehouses[0])
	d.runPersistence(warehouses[0], cfg.Persistence.Dir)

	fmt.Println(reg.Report())
	for _, w := range warehouses {
		logger.Info("Warehouse statistics", "warehouse", w.Name(), "summary", w.Stats().Summary())
	}

	return nil
}

// loadConfig loads the YAML config, or falls back to the built-in demo
// configuration when no path was given.
func loadConfig(cliCfg *CLIConfig) (*config.Config, error) {
	if cliCfg.ConfigPath == "" {
		return demoConfig(), nil
	}
	return config.Load(cliCfg.ConfigPath)
}

// demoConfig seeds the classic two-site demo: Mumbai holding an empty
// laptop shelf, Delhi holding laptops and mice.
func demoConfig() *config.Config {
	cfg := config.Default()
	cfg.Log.Format = "text"
	cfg.Warehouses = []config.WarehouseConfig{
		{
			Name: "Mumbai",
			Products: []config.ProductConfig{
				{ID: "P-1001", Name: "Laptop", Quantity: 0, ReorderThreshold: 5},
			},
		},
		{
			Name: "Delhi",
			Products: []config.ProductConfig{
				{ID: "P-1001", Name: "Laptop", Quantity: 3, ReorderThreshold: 5},
				{ID: "P-2002", Name: "Mouse", Quantity: 25, ReorderThreshold: 10},
			},
		},
	}
	return cfg
}

// buildWarehouses constructs, observes, seeds, and registers every
// configured warehouse.
func buildWarehouses(
	cfg *config.Config,
	metricsRegistry *metric.MetricsRegistry,
	logger *slog.Logger,
	journal io.Writer,
	reg *registry.Registry,
) ([]*warehouse.Warehouse, error) {
	warehouses := make([]*warehouse.Warehouse, 0, len(cfg.Warehouses))
	for _, whCfg := range cfg.Warehouses {
		w, err := warehouse.New(whCfg.Name, warehouse.WithMetrics(metricsRegistry))
		if err != nil {
			return nil, err
		}

		if err := w.RegisterObserver(alert.Log(logger)); err != nil {
			return nil, err
		}
		if journal != nil {
			if err := w.RegisterObserver(alert.Journal(journal)); err != nil {
				return nil, err
			}
		}

		for _, pCfg := range whCfg.Products {
			p, err := warehouse.NewProduct(pCfg.ID, pCfg.Name, pCfg.Quantity, pCfg.ReorderThreshold)
			if err != nil {
				return nil, err
			}
			if err := w.AddProduct(p); err != nil {
				return nil, err
			}
		}

		if err := reg.Add(w); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, nil
}

// demo drives the scripted scenarios and records every operation in the
// core platform metrics.
type demo struct {
	logger  *slog.Logger
	metrics *metric.Metrics
}

// do runs one catalog operation, records it, and logs failures without
// aborting the demo.
func (d *demo) do(warehouseName, operation string, fn func() error) {
	err := fn()
	status := "ok"
	if err != nil {
		status = "error"
		d.metrics.RecordError(warehouseName, errors.Classify(err).String())
		d.logger.Error("Operation failed",
			"warehouse", warehouseName, "operation", operation, "error", err)
	}
	d.metrics.RecordOperation(warehouseName, operation, status)
}

// runScripted replays the fixed receipt/fulfillment sequence against the
// warehouse's first product.
func (d *demo) runScripted(w *warehouse.Warehouse) {
	snapshots := w.ListSnapshot()
	if len(snapshots) == 0 {
		return
	}
	id := snapshots[0].ID

	d.logger.Info("Running scripted demo", "warehouse", w.Name(), "product", id)
	d.do(w.Name(), "receive_shipment", func() error { return w.ReceiveShipment(id, 10) })
	d.do(w.Name(), "fulfill_order", func() error { return w.FulfillOrder(id, 6) })

	fmt.Println("\nSnapshot after scripted demo:")
	fmt.Println(w.Describe())
}

// runConcurrent races a shipper against a buyer on the same product.
func (d *demo) runConcurrent(w *warehouse.Warehouse) {
	snapshots := w.ListSnapshot()
	if len(snapshots) == 0 {
		return
	}
	id := snapshots[0].ID

	d.logger.Info("Running concurrency demo", "warehouse", w.Name(), "product", id)

	var g errgroup.Group
	g.Go(func() error {
		d.do(w.Name(), "receive_shipment", func() error { return w.ReceiveShipment(id, 50) })
		return nil
	})
	g.Go(func() error {
		d.do(w.Name(), "fulfill_order", func() error { return w.FulfillOrder(id, 40) })
		return nil
	})
	_ = g.Wait()

	fmt.Println("\nSnapshot after concurrency demo:")
	fmt.Println(w.Describe())
}

// runPersistence round-trips the warehouse through the filestore.
func (d *demo) runPersistence(w *warehouse.Warehouse, dir string) {
	path := filepath.Join(dir, strings.ToLower(w.Name())+"_inventory.txt")

	d.do(w.Name(), "save_snapshot", func() error { return filestore.Save(w, path) })

	reloaded, err := filestore.Load(w.Name()+"Reloaded", path)
	if err != nil {
		d.metrics.RecordError(w.Name(), errors.Classify(err).String())
		d.metrics.RecordOperation(w.Name(), "load_snapshot", "error")
		d.logger.Error("Persistence demo skipped", "path", path, "error", err)
		return
	}
	d.metrics.RecordOperation(w.Name(), "load_snapshot", "ok")

	d.logger.Info("Persistence round trip complete", "path", path)
	fmt.Println("\nReloaded inventory:")
	fmt.Println(reloaded.Describe())
}
