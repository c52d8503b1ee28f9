// Package printer handles output formatting and display
package printer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/wc/internal/config"
	"github.com/bethropolis/wc/internal/counter"
)

// Printer formats counts and writes them to the configured output
type Printer struct {
	output     io.Writer
	jsonOutput bool
}

// New creates a new Printer writing to stdout
func New() *Printer {
	return &Printer{
		output: os.Stdout,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// JSONResult is the record written in JSON mode.
// Counts that were not requested are omitted.
type JSONResult struct {
	Path  string `json:"path"`
	Lines *int64 `json:"lines,omitempty"`
	Words *int64 `json:"words,omitempty"`
	Chars *int64 `json:"chars,omitempty"`
}

// PrintCounts writes one result for path
func (p *Printer) PrintCounts(path string, counts counter.Counts, opts config.Options) error {
	if p.jsonOutput {
		return p.printJSON(path, counts, opts)
	}
	return p.printLine(path, counts, opts)
}

// printLine writes "\t[lines\t][words\t][chars\t]path\n", fields always
// in lines, words, chars order.
func (p *Printer) printLine(path string, counts counter.Counts, opts config.Options) error {
	w := bufio.NewWriter(p.output)

	w.WriteByte('\t')
	if opts.ShowLines {
		fmt.Fprintf(w, "%d\t", counts.Lines)
	}
	if opts.ShowWords {
		fmt.Fprintf(w, "%d\t", counts.Words)
	}
	if opts.ShowChars {
		fmt.Fprintf(w, "%d\t", counts.Chars)
	}
	w.WriteString(path)
	w.WriteByte('\n')

	return w.Flush()
}

func (p *Printer) printJSON(path string, counts counter.Counts, opts config.Options) error {
	res := JSONResult{Path: path}
	if opts.ShowLines {
		res.Lines = &counts.Lines
	}
	if opts.ShowWords {
		res.Words = &counts.Words
	}
	if opts.ShowChars {
		res.Chars = &counts.Chars
	}

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("printer: failed to marshal result: %w", err)
	}
	data = append(data, '\n')
	_, err = p.output.Write(data)
	return err
}
