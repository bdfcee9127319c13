package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/logger"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/passgen"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logEnvLoad(log, envErr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, os.Args[1:]); err != nil {
		stop()
		log.Error().Err(err).Msg("passgen failed")
		os.Exit(1)
	}
}

func logEnvLoad(log zerolog.Logger, err error) {
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		log.Debug().Msg("no .env file found, using environment variables")
	default:
		log.Warn().Err(err).Msg("failed to load .env file, using environment variables")
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger, args []string) error {
	settingsService := service.NewSettingsService(repository.NewSettingsRepository(cfg.SettingsPath))

	settings, err := settingsService.Load()
	if err != nil {
		if !errors.Is(err, repository.ErrCorruptSettings) {
			return err
		}
		log.Warn().Err(err).Msg("ignoring unreadable settings file, using defaults")
		settings = model.DefaultSettings()
	}

	session := handler.NewSession(settings)
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(passgen.DefaultSource()), session, nil)
	settingsHandler := handler.NewSettingsHandler(settingsService, session)

	r := handler.NewRouter()
	r.Use(middleware.Recover(log), middleware.Logger(log))
	handler.Register(r, genHandler, settingsHandler)

	log.Debug().Str("settings", cfg.SettingsPath).Str("env", cfg.Env).Strs("commands", r.Commands()).Msg("session started")

	if len(args) > 0 {
		err := r.Dispatch(ctx, os.Stdout, strings.Join(args, " "))
		if errors.Is(err, handler.ErrQuit) {
			return nil
		}
		return err
	}

	fmt.Fprintln(os.Stdout, `passgen: type "help" for commands`)
	return r.Run(ctx, os.Stdin, os.Stdout)
}
