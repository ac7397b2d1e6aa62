package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	envFile    string
	// configSet is true when --config was passed on the command line.
	configSet bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "summarizer",
		Short:         "Summarize client websites and meeting recordings listed in a Google Sheet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			f.configSet = cmd.Flags().Changed("config")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, f)
		},
	}
	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", "config.yaml", "config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&f.envFile, "env-file", ".env", "dotenv file with credentials")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Process every sheet row once (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, f)
		},
	})
	rootCmd.AddCommand(newDoctorCmd(f))

	return rootCmd
}

// loadConfig reads the env file and config file when present, then applies
// environment overrides. A config path given explicitly must exist.
func loadConfig(f *flags) (*config.Config, error) {
	if _, err := os.Stat(f.envFile); err == nil {
		if err := godotenv.Load(f.envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", f.envFile, err)
		}
	}

	path := f.configPath
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if f.configSet {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		path = ""
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

func runBatch(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithRunID(ctx, uuid.NewString())

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "SmartSummarizer")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Run ID: %s", logger.RunID(ctx))
	log.Info(ctx, "LLM provider: %s", cfg.LLM.Provider)
	log.Info(ctx, "Chunk transcription: %d at a time", cfg.Transcription.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	runner, err := buildRunner(ctx, cfg, log)
	if err != nil {
		return err
	}

	if _, err := runner.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info(ctx, "Shutdown signal received, stopped")
			return nil
		}
		return err
	}
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
