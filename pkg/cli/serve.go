package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trontrack/trackd/pkg/admin"
	"github.com/trontrack/trackd/pkg/config"
	"github.com/trontrack/trackd/pkg/logging"
)

var (
	servePort      int
	serveConfig    string
	serveLogLevel  string
	serveLogFormat string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if serveConfig != "" {
			loaded, err := config.Load(serveConfig)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		// Flags override file values.
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = serveLogLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = serveLogFormat
		}

		log := logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.Log.Level),
			Format: logging.ParseFormat(cfg.Log.Format),
		})

		corsCfg := admin.DefaultCORSConfig()
		if len(cfg.CORS.AllowedOrigins) > 0 {
			corsCfg.AllowedOrigins = cfg.CORS.AllowedOrigins
		}

		api := admin.New(cfg.Port,
			admin.WithLogger(log),
			admin.WithPrefix(cfg.APIPrefix),
			admin.WithCORS(corsCfg),
			admin.WithVersion(buildInfo.Version),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- api.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := api.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "path to trackd.yaml")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "text", "log format (text, json)")
	rootCmd.AddCommand(serveCmd)
}
