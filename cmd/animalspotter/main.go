package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/animalspotter/animalspotter/client"
	"github.com/animalspotter/animalspotter/internal/config"
)

const requestTimeout = 15 * time.Second

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	serviceURL string
	debug      bool
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	// Values from a local .env become visible to flag defaults below.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid environment configuration")
		cfg = &config.Config{BaseURL: client.DefaultBaseURL, LogLevel: "info", DevServerAddr: ":8080"}
	}

	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:           "animalspotter",
		Short:         "Command line client for the AnimalSpotter API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLoggerTo(cmd.ErrOrStderr())
			if flags.debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(cfg.Level())
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.serviceURL, "service-url", cfg.BaseURL, "Base URL of the AnimalSpotter API")
	rootCmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newRegisterCmd(flags))
	rootCmd.AddCommand(newLoginCmd(flags))
	rootCmd.AddCommand(newAnimalsCmd(flags))
	rootCmd.AddCommand(newDevServerCmd(cfg.DevServerAddr))

	return rootCmd
}

func (f *rootFlags) newClient() (*client.Client, error) {
	opts := []client.Option{client.WithLogger(log.Logger)}
	if f.debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	return client.New(f.serviceURL, opts...)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), requestTimeout)
}
