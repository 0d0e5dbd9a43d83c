package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	logger  zerolog.Logger
	rootCmd = &cobra.Command{
		Use:   "nestegg",
		Short: "Home down payment savings backend",
		Long: `nestegg tracks a home down payment goal funded by Bitcoin dollar-cost averaging.

It serves goal projections, the goal creation wizard, portfolio performance
and the live price over gRPC.`,
		Version:           version,
		PersistentPreRunE: initLogger,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.PersistentFlags().Bool("json-logs", false, "write logs as JSON instead of the console format")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(priceCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger sets up console logging at info until a command loads its config
func initLogger(cmd *cobra.Command, _ []string) error {
	return configureLogger(cmd, "info", false)
}

// configureLogger applies the configured level and format. The --log-level
// and --json-logs flags win over configuration.
func configureLogger(cmd *cobra.Command, configuredLevel string, production bool) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	if levelName == "" {
		levelName = configuredLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	if jsonLogs || production {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return nil
}
