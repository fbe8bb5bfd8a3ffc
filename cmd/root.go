package cmd

import (
	"context"
	"os"

	"github.com/CristiGvl/picoIRQ/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	vp  = viper.New()
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "picoirq",
	Short: "Query per-CPU interrupt counters from /proc/interrupts",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(vp); err != nil {
			return err
		}
		log.SetLevel(cfg.LogLevel)
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	flags := rootCmd.PersistentFlags()
	flags.String(config.ProcPathKey, config.DefaultProcPath, "Mount point of the procfs to read")
	flags.String(config.LogLevelKey, config.DefaultLogLevel, "Log level (trace, debug, info, warn, error)")

	config.SetDefaults(vp)
	vp.SetEnvPrefix(config.EnvPrefix)
	vp.SetEnvKeyReplacer(config.EnvKeyReplacer)
	vp.AutomaticEnv()
	if err := vp.BindPFlags(flags); err != nil {
		log.WithError(err).Fatal("Failed to bind flags")
	}
}
