package app

import (
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/wc/internal/config"
	"github.com/bethropolis/wc/internal/counter"
	"github.com/bethropolis/wc/internal/logger"
	"github.com/bethropolis/wc/internal/printer"
	"github.com/bethropolis/wc/internal/summary"
	"github.com/bethropolis/wc/internal/utils"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    utils.Logger
	Output io.Writer
}

// New creates a new App writing results to stdout and diagnostics to stderr
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	return &App{
		cfg:    cfg,
		log:    newLogger(cfg, stderr),
		Output: stdout,
	}
}

// newLogger builds the run logger; a disabled level gets a NoopLogger.
// --verbose wins over an explicit level.
func newLogger(cfg *config.Config, stderr io.Writer) utils.Logger {
	log := logger.New(stderr, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" && !cfg.Verbose {
		log.SetLevel(cfg.LogLevel)
	}
	if log.Level() == logger.LevelNone {
		return utils.NoopLogger{}
	}
	return log
}

// Run counts the configured file and prints the result line.
// Nothing is written to Output when counting fails.
func (a *App) Run() error {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		_, err := fmt.Fprintf(a.Output, "wc version %s\n", a.cfg.Version)
		return err
	}

	opts := a.cfg.Effective()
	a.log.Debug("Path: %s", a.cfg.Path)
	a.log.Debug("Fields: lines=%v words=%v chars=%v", opts.ShowLines, opts.ShowWords, opts.ShowChars)
	a.log.Debug("JSON output: %v", a.cfg.JSONOutput)

	counts, err := counter.CountFile(a.cfg.Path)
	if err != nil {
		return err
	}

	p := printer.New().WithOutput(a.Output).WithJSON(a.cfg.JSONOutput)
	if err := p.PrintCounts(a.cfg.Path, counts, opts); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	summary.DisplayResults(a.log, a.cfg.Path, counts, time.Since(startTime))
	return nil
}
