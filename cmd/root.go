package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	logLevel       = &slog.LevelVar{}
	logger         = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	logLevelString string
)

var rootCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Synthetic key sequences for hash table benchmarks",
	Long: `keygen fills key sequences from GAUSSIAN, GEOMETRIC, UNIFORM, UNIQUE and SAME
distributions, optionally turns them into probe sets with a target matching
rate, and writes them out for a benchmark harness to load.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, levelErr := parseLogLevel(logLevelString)
		if levelErr != nil {
			return levelErr
		}
		logLevel.Set(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelString, "level", "INFO", "Logging verbosity level. Must be one of: {DEBUG, INFO, WARN, ERROR}.")
}

// parseLogLevel maps a case-insensitive level name to its slog level.
func parseLogLevel(logLevelString string) (slog.Level, error) {
	switch strings.ToLower(logLevelString) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level specified: %s", logLevelString)
	}
}

// Execute runs the command line until it completes or the process is
// interrupted. Errors are logged before being returned.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error("keygen failed", "error", err)
	}
	return err
}
