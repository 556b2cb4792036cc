package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	adapthttp "ecotracker/internal/adapter/http"
	"ecotracker/internal/adapter/memory"
	"ecotracker/internal/app"
	"ecotracker/internal/config"
)

const shutdownTimeout = 10 * time.Second

// newRootCmd creates the ecotracker command tree.
func newRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ecotracker",
		Short:         "Waste tracking dashboard",
		Long:          "EcoTracker: log household waste, follow weekly recycling and carbon figures, and compare with the community.",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newServeCmd(), newVersionCmd(ver))
	return cmd
}

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(ver)
		},
	}
}

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API and web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, configPath, os.LookupEnv)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, config.NewLogger(cfg.Log, cmd.ErrOrStderr()))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().String("addr", "", "listen address (overrides config and ADDR)")
	cmd.Flags().String("web-dir", "", "directory holding the web UI (overrides config and WEB_DIR)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error (overrides config and LOG_LEVEL)")
	return cmd
}

// resolveConfig layers the config file, the environment and the flags, in
// that order, and validates the result.
func resolveConfig(cmd *cobra.Command, path string, lookup func(string) (string, bool)) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(lookup)

	flags := map[string]*string{
		"addr":      &cfg.Addr,
		"web-dir":   &cfg.WebDir,
		"log-level": &cfg.Log.Level,
	}
	for name, dst := range flags {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	return cfg, cfg.Validate()
}

func serve(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	db := memory.New()

	sessions := app.NewSessionService(db, cfg.Session.TTL)
	svc := adapthttp.Services{
		Waste:     app.NewWasteService(db, cfg.Goals),
		Carbon:    app.NewCarbonService(db),
		Charts:    app.NewChartsService(db, time.Local),
		Community: app.NewCommunityService(db),
		Sessions:  sessions,
	}

	reaper, err := app.NewReaper(sessions, cfg.Session.ReapSchedule, log)
	if err != nil {
		return err
	}
	reaper.Start()
	defer reaper.Stop()

	h := adapthttp.New(svc, cfg.WebDir).
		WithLogger(log).
		WithShareLimit(cfg.Share.Every, cfg.Share.Burst).
		Handler()
	srv := &http.Server{Addr: cfg.Addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
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

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
