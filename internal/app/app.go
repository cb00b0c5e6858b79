package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/gatesim/internal/config"
	"github.com/specialistvlad/gatesim/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	logFile *os.File
	cfg     *Config
	job     *config.Job
}

// NewApp builds the logger and loads the job. Results are written to outW
// and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	a := &App{outW: outW, cfg: cfg}

	var fileW io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		fileW = f
	}
	a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, logW, fileW)
	ctx := ctxlog.WithLogger(context.Background(), a.logger)
	a.logger.Debug("Logger configured successfully.")

	job, err := loader.Load(ctx, cfg.NetlistPath)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.job = job
	a.logger.Debug("Configuration loaded and translated into unified model.", "netlist", job.Netlist.Name)
	return a, nil
}

// Job returns the loaded job. This is primarily for testing.
func (a *App) Job() *config.Job {
	return a.job
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
