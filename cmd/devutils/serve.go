package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	devutils "github.com/Showshin/dev-utils-plus"
	httpadapter "github.com/Showshin/dev-utils-plus/internal/adapters/http"
	"github.com/Showshin/dev-utils-plus/internal/cli"
	"github.com/Showshin/dev-utils-plus/internal/logging"
	"github.com/Showshin/dev-utils-plus/pkg/registry"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	Long: `Starts the operation catalog in server mode, exposing a JSON API over
HTTP with prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Serve.Addr = addr
		}

		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(level)

		handler := httpadapter.NewHandler(registry.Builtin(),
			httpadapter.WithLogger(logger),
			httpadapter.WithVersion(strings.TrimSpace(devutils.Version)),
		)

		srv := &http.Server{
			Addr:    cfg.Serve.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting devutils server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("failed to close server", "error", err)
				}
			}
			logger.Info("devutils server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringP("config", "c", "", "Path to a config file (YAML, JSON or TOML)")
}
