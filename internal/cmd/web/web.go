// Package web wires configuration and lifecycle for the web process.
package web

import (
	"context"
	"flag"
	"fmt"

	"github.com/louisbranch/panelboard/internal/platform/config"
	"github.com/louisbranch/panelboard/internal/platform/otel"
	"github.com/louisbranch/panelboard/internal/web"
)

// Config holds the web command configuration. Environment variables provide
// defaults; flags override them.
type Config struct {
	HTTPAddr    string `env:"PANELBOARD_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	StoragePath string `env:"PANELBOARD_WEB_STORAGE_PATH" envDefault:"panelboard.db"`
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "SQLite database path for the panel catalog")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "panelboard-web")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	server, err := web.NewServer(web.Config{
		HTTPAddr:    cfg.HTTPAddr,
		StoragePath: cfg.StoragePath,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
