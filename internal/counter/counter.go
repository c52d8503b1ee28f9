// Package counter implements the line, word and character counting pass
package counter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Counts holds the totals produced by a single scan
type Counts struct {
	Lines int64
	Words int64
	Chars int64
}

// OpenError reports that the input file could not be opened
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("file not found: %v", e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports an I/O failure after the file was opened
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// errIsDirectory is wrapped in an OpenError when the path names a directory
var errIsDirectory = errors.New("is a directory")

// isSpace matches the ASCII whitespace set: space, \t, \n, \v, \f, \r
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Count scans r once and returns its line, word and byte totals.
// A word is a maximal run of non-whitespace bytes.
func Count(r io.Reader) (Counts, error) {
	var (
		res    Counts
		inWord bool
		br     = bufio.NewReader(r)
	)

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Counts{}, err
		}

		res.Chars++
		if isSpace(b) {
			if inWord {
				inWord = false
				res.Words++
			}
		} else {
			inWord = true
		}
		if b == '\n' {
			res.Lines++
		}
	}

	// close a trailing word with no whitespace after it
	if inWord {
		res.Words++
	}
	return res, nil
}

// CountFile opens path and counts its contents.
// Failures are returned as *OpenError or *ReadError.
func CountFile(path string) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counts{}, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Counts{}, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		return Counts{}, &OpenError{
			Path: path,
			Err:  &os.PathError{Op: "open", Path: path, Err: errIsDirectory},
		}
	}

	res, err := Count(f)
	if err != nil {
		return Counts{}, &ReadError{Path: path, Err: err}
	}
	return res, nil
}
