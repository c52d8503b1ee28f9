package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// ErrUsage is returned when the positional arguments are wrong
var ErrUsage = errors.New("usage error")

// Config holds all application configuration settings
type Config struct {
	// Input
	Path string

	// Counts to display, as given on the command line
	Lines bool
	Words bool
	Chars bool

	// Logging settings
	Verbose   bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Output format
	JSONOutput bool

	// Version info
	ShowVersion bool
	Version     string
}

// Options is the set of fields to print once defaults are applied
type Options struct {
	ShowLines bool
	ShowWords bool
	ShowChars bool
}

// Effective applies the default-expansion rule: with no count flag
// given, all three counts are shown. The Config itself is left as parsed.
func (c *Config) Effective() Options {
	if !c.Lines && !c.Words && !c.Chars {
		return Options{ShowLines: true, ShowWords: true, ShowChars: true}
	}
	return Options{ShowLines: c.Lines, ShowWords: c.Words, ShowChars: c.Chars}
}

// NewFlagSet registers all flags onto a fresh FlagSet bound to c
func NewFlagSet(c *Config, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("wc", pflag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVarP(&c.Lines, "lines", "l", false, "Print the line count")
	fs.BoolVarP(&c.Words, "words", "w", false, "Print the word count")
	fs.BoolVarP(&c.Chars, "chars", "c", false, "Print the character (byte) count")
	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "WARN", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&c.JSONOutput, "json", false, "Output results as a JSON object")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: wc [-l] [-w] [-c] <path>\n\n")
		fs.PrintDefaults()
	}
	return fs
}

// Parse builds a Config from command-line arguments (without the program name).
// It returns pflag.ErrHelp when help was requested.
func Parse(args []string, output io.Writer) (*Config, error) {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	fs := NewFlagSet(c, output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	if c.ShowVersion {
		return c, nil
	}

	switch fs.NArg() {
	case 1:
		c.Path = fs.Arg(0)
	case 0:
		return nil, fmt.Errorf("%w: missing file path", ErrUsage)
	default:
		return nil, fmt.Errorf("%w: expected exactly one file path, got %d", ErrUsage, fs.NArg())
	}

	return c, nil
}
