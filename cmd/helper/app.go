package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/helper/pkg/logger"
	"github.com/dmitrymomot/helper/pkg/password"
)

// Config is parsed from the environment by pkg/config.
type Config struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"helper"`
	LogLevel       string `env:"LOG_LEVEL"`
	PasswordLength int    `env:"PASSWORD_LENGTH" envDefault:"16"`
	OutputFormat   string `env:"OUTPUT_FORMAT" envDefault:"text"`
	ZoneInfoDir    string `env:"ZONEINFO"`
}

type invocationKey struct{}

// app carries the dependencies shared by all commands.
type app struct {
	cfg Config
	gen *password.Generator
	log *slog.Logger
}

func newApp(cfg Config) *app {
	return &app{
		cfg: cfg,
		gen: password.New(),
	}
}

// setup runs before every command: it stamps the context with an invocation id
// and builds the logger on the command's stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, a.cfg.ServiceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("invocation_id", invocationKey{}),
	}
	if a.cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(a.cfg.LogLevel)))
	}
	a.log = logger.New(opts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, invocationKey{}, uuid.NewString()))

	a.log.DebugContext(cmd.Context(), "command started", logger.Command(cmd.CommandPath()))
	return nil
}

// component returns the logger tagged with the helper package a command serves.
func (a *app) component(name string) *slog.Logger {
	return a.log.With(logger.Component(name))
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "helper",
		Short:             "Password, time zone and word case helpers",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newPasswordCmd(a),
		newTimezonesCmd(a),
		newCaseCmd(a),
	)
	return root
}

func commandName(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" ")
}
