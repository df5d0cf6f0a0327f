// Command lipi-server runs the transliteration HTTP service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akshara/lipi/httpapi"
	"github.com/akshara/lipi/observability"
	"github.com/akshara/lipi/observability/zaplog"

	_ "github.com/akshara/lipi/ocr/tesseract"
)

type serverConfig struct {
	Addr         string   `yaml:"addr"`
	Workers      int      `yaml:"workers"`
	OCRLanguages []string `yaml:"ocr_languages"`
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lipi-server: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "lipi-server: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (serverConfig, error) {
	cfg := serverConfig{Addr: ":8080"}

	configPath := flag.String("config", "", "YAML configuration file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	workers := flag.Int("workers", 0, "Conversion worker count (overrides config)")
	flag.Parse()

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", *configPath, err)
		}
		if cfg.Addr == "" {
			cfg.Addr = ":8080"
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	return cfg, nil
}

func run(cfg serverConfig) error {
	logger, err := zaplog.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	api := httpapi.New(
		httpapi.WithLogger(logger),
		httpapi.WithOCRLanguages(cfg.OCRLanguages...),
		httpapi.WithWorkers(cfg.Workers),
	)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", observability.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("stopped")
	return nil
}
