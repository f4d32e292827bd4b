package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wordquiz/internal/cli"
	"wordquiz/internal/config"
	"wordquiz/internal/repository/jsonfile"
	"wordquiz/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.CreateRootCommand(cli.NewFlags(), buildApp)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildApp loads configuration and the vocabulary and wires the session
func buildApp(flags *cli.Flags) (*cli.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flags.WordsFile != "" {
		cfg.WordsFile = flags.WordsFile
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Debug("Configuration loaded", zap.String("words_file", cfg.WordsFile))

	// Initialize repository and services
	repo := jsonfile.NewVocabularyRepo(cfg.WordsFile)
	vocabulary := service.NewVocabularyService(repo, logger)

	if err := vocabulary.Load(); err != nil {
		// a corrupted file is not silently replaced with an empty vocabulary
		logger.Error("Failed to load vocabulary",
			zap.String("path", repo.Path()),
			zap.Error(err),
		)
		logger.Sync()
		return nil, fmt.Errorf("%w; fix or move %s and start again", err, repo.Path())
	}

	session := service.NewSession(vocabulary, service.SessionOptions{
		MinVocabulary: cfg.MinVocabulary,
		MaxOptions:    cfg.MaxOptions,
	}, logger)

	return &cli.App{
		Config:  cfg,
		Session: session,
		Logger:  logger,
	}, nil
}

// newLogger builds a production logger writing to stderr at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
