package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/seetharamanm/layercover"
	"github.com/seetharamanm/layercover/infrastructure/api"
	"github.com/seetharamanm/layercover/internal/config"
	"github.com/seetharamanm/layercover/internal/log"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		envFile     string
		host        string
		port        int
		sampleFile  string
		paletteFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST          Server host to bind to (default: 0.0.0.0)
  PORT          Server port to listen on (default: 8080)
  LOG_LEVEL     Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT    Log format: pretty, json (default: pretty)
  CORS_ORIGINS  Comma-separated allowed CORS origins (default: *)
  SAMPLE_FILE   CSV file served by the sample-dataset endpoint
  PALETTE_FILE  YAML file mapping layer names to hex colours`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port, sampleFile, paletteFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")
	cmd.Flags().StringVar(&sampleFile, "sample-file", "", "CSV file served by the sample-dataset endpoint")
	cmd.Flags().StringVar(&paletteFile, "palette-file", "", "YAML file mapping layer names to hex colours")

	return cmd
}

func runServe(envFile, host string, port int, sampleFile, paletteFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = applyServeOverrides(cfg, host, port, sampleFile, paletteFile)

	logger := log.NewLogger(cfg)
	slogger := logger.Slog()

	opts := []layercover.Option{
		layercover.WithLogger(slogger),
	}
	if cfg.SampleFile() != "" {
		opts = append(opts, layercover.WithSampleFile(cfg.SampleFile()))
	}
	if cfg.PaletteFile() != "" {
		opts = append(opts, layercover.WithPaletteFile(cfg.PaletteFile()))
	}

	client, err := layercover.New(opts...)
	if err != nil {
		return fmt.Errorf("create layercover client: %w", err)
	}

	apiServer := api.NewAPIServer(client, cfg.CORSOrigins())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slogger.Info("starting server",
		slog.String("addr", cfg.Addr()),
		slog.String("version", version),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apiServer.ListenAndServe(cfg.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		slogger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return apiServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int, sampleFile, paletteFile string) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}
	if sampleFile != "" {
		opts = append(opts, config.WithSampleFile(sampleFile))
	}
	if paletteFile != "" {
		opts = append(opts, config.WithPaletteFile(paletteFile))
	}

	return cfg.Apply(opts...)
}
