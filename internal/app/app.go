package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/gagather/internal/command"
	"github.com/vk/gagather/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  config.Loader
	runner  *command.Runner
	session string
}

// NewApp is the constructor for the main application. Progress lines and
// logs both go to outW. Extra runner options are applied after the ones
// derived from cfg.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, runnerOpts ...command.Option) *App {
	session := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW).With("session", session)
	logger.Debug("Logger configured successfully.")

	opts := []command.Option{
		command.WithTestMode(cfg.TestMode),
		command.WithOutput(outW),
		command.WithColor(cfg.Color),
	}
	opts = append(opts, runnerOpts...)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  loader,
		runner:  command.New(opts...),
		session: session,
	}
}

// Session returns the identifier attached to every log line of this run.
func (a *App) Session() string {
	return a.session
}
