package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/CristiGvl/picoIRQ/api"
	"github.com/CristiGvl/picoIRQ/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve interrupt snapshots over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.String(config.BindKey, config.DefaultBind, "IP address to bind the server to")
	flags.String(config.PortKey, config.DefaultPort, "Port to run the server on")
	if err := vp.BindPFlags(flags); err != nil {
		log.WithError(err).Fatal("Failed to bind flags")
	}

	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	if err := cfg.ValidateListen(); err != nil {
		return err
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		return err
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan

		log.WithField("signal", sig).Info("Shutting down")
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("Error during shutdown")
		}
	}()

	log.WithFields(log.Fields{
		"address":  cfg.Address(),
		"procPath": cfg.ProcPath,
	}).Info("Starting picoIRQ server")
	return server.Start(cfg.Address())
}
