// Package main is the entry point for the vtm character sheet tool
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtm-sheets/internal/config"
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

var (
	storeBackend string
	redisAddr    string
	logLevel     string

	// cfg is loaded from the environment before any subcommand runs, then
	// overridden by whichever persistent flags were set
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vtm",
	Short: "Vampire: The Masquerade character sheets",
	Long: `vtm lists, prints and creates Vampire: The Masquerade 5th edition
character sheets stored as JSON files or in Redis.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "storage backend: file or redis (env VTM_STORE)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "redis address (env VTM_REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env VTM_LOG_LEVEL)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(checkCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg = loaded

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	slog.SetDefault(slog.New(handler))

	slog.DebugContext(cmd.Context(), "configured",
		"store", cfg.Store,
		"log_level", cfg.LogLevel)

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotenv(".env"); err != nil {
		return nil, err
	}

	var c config.Config
	if err := config.ParseEnv(&c); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		c.Store = storeBackend
	}
	if flags.Changed("redis-addr") {
		c.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &c, nil
}
