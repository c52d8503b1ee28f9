package main

import (
	"errors"
	"io"
	"os"

	"github.com/bethropolis/wc/internal/app"
	"github.com/bethropolis/wc/internal/config"
	"github.com/bethropolis/wc/internal/logger"
	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the single error boundary: every failure ends here as a
// diagnostic on stderr and a non-zero exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// Load configuration from command-line flags
	cfg, err := config.Parse(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fatalLogger(stderr, false).Error("%v", err)
		return exitUsage
	}

	if err := app.New(cfg, stdout, stderr).Run(); err != nil {
		fatalLogger(stderr, cfg.UseColors).Error("%v", err)
		return exitError
	}
	return exitOK
}

// fatalLogger reports the error that ends the run. It is pinned to the
// error level so --log-level cannot hide it.
func fatalLogger(stderr io.Writer, useColors bool) *logger.Logger {
	return logger.New(stderr, false, useColors).WithLevel(logger.LevelError)
}
