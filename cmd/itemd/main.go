package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logadapter "github.com/bft-labs/itemd/internal/adapters/log"
	filestore "github.com/bft-labs/itemd/internal/adapters/store/file"
	memstore "github.com/bft-labs/itemd/internal/adapters/store/mem"
	"github.com/bft-labs/itemd/internal/app"
	"github.com/bft-labs/itemd/internal/cliconfig"
	"github.com/bft-labs/itemd/internal/ports"
	"github.com/bft-labs/itemd/internal/server"
)

const helpDescription = `
Serve a small item record API with concurrent batch processing.

Highlights:
  - CRUD over items plus GET /api/items/process, which re-processes every
    stored item through a bounded worker pool.
  - A batch is all-or-nothing: the first failing item fails the whole run.
  - Items live in memory by default; point --store-dir at a directory to
    persist them as JSON across restarts.
  - Configure via file, env (ITEMD_*), or flags.
`

var exampleUsage = strings.TrimSpace(`
  itemd --listen-addr :8080
  itemd --store-dir /var/lib/itemd --workers 16
  itemd --config $HOME/.itemd/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "itemd",
		Short:   "Serve a small item record API with concurrent batch processing",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.itemd/config.toml), then
			// apply env and flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := logadapter.SetGlobalLevel(cfg.LogLevel); err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}

			zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			logger := logadapter.NewZerologAdapterWithLogger(zl)
			logger.Info("configuration", ports.Any("config", cfg))

			var store ports.Store
			if cfg.StoreDir != "" {
				store = filestore.New(cfg.StoreDir)
			} else {
				store = memstore.New()
			}

			transformer := app.NewTransformer(store, cfg.TransformDelay, logger)
			processor := app.NewProcessor(store, transformer, cfg.Workers, logger)
			svc := app.NewService(store, processor)
			srv := server.New(cfg.ListenAddr, svc, logger)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if cfg.WatchConfig && cfgFile != "" {
				watcher := cliconfig.NewWatcher(cfgFile, logger, func(fc cliconfig.FileConfig) {
					if fc.LogLevel == "" {
						return
					}
					if err := logadapter.SetGlobalLevel(fc.LogLevel); err != nil {
						logger.Warn("invalid log level in config file",
							ports.String("level", fc.LogLevel),
							ports.Err(err),
						)
						return
					}
					logger.Info("log level updated", ports.String("level", fc.LogLevel))
				})
				go watcher.Run(ctx)
			}

			if err := srv.Start(); err != nil {
				return fmt.Errorf("start server: %w", err)
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			logger.Info("received signal, stopping...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
			defer shutdownCancel()

			if err := srv.Stop(shutdownCtx); err != nil {
				return fmt.Errorf("stop server: %w", err)
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.itemd/config.toml)")
	root.Flags().StringVar(&cfg.ListenAddr, "listen-addr", cfg.ListenAddr, "HTTP listen address")
	root.Flags().StringVar(&cfg.StoreDir, "store-dir", cfg.StoreDir, "directory for the JSON item store (empty keeps items in memory)")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "worker pool size for batch processing")
	root.Flags().DurationVar(&cfg.TransformDelay, "transform-delay", cfg.TransformDelay, "artificial per-item processing latency")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.WatchConfig, "watch-config", cfg.WatchConfig, "hot-reload the log level when the config file changes")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
