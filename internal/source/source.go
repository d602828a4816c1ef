// Package source loads program text and splits it into lines of words.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Location names a line in a source file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is a source line split into words.
type Line struct {
	Location
	Words []string
}

func (sl Line) String() string { return fmt.Sprintf("%v %q", sl.Location, sl.Words) }

// NotFoundError is returned by ReadFile when the named file does not exist.
type NotFoundError struct{ Name string }

func (nf NotFoundError) Error() string { return fmt.Sprintf("failed to find file <%v>", nf.Name) }

// Is allows errors.Is(err, fs.ErrNotExist).
func (nf NotFoundError) Is(target error) bool { return target == fs.ErrNotExist }

// ReadFile reads and parses the named file.
func ReadFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NotFoundError{path}
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(path, f)
}

// Read reads all of r and parses it; name is used for line locations.
func Read(name string, r io.Reader) ([]Line, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", name, err)
	}
	return Parse(name, string(b)), nil
}

// Parse splits text into lines of words. Carriage returns are dropped,
// surrounding whitespace is trimmed, and any line starting with "//" is
// skipped as a comment. Locations still count skipped lines.
func Parse(name, text string) []Line {
	text = strings.ReplaceAll(text, "\r", "")
	lineNo := 1
	for _, r := range text {
		if r == '\n' {
			lineNo++
		} else if r != ' ' && r != '\t' {
			break
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var lines []Line
	for i, s := range strings.Split(text, "\n") {
		if strings.HasPrefix(s, "//") {
			continue
		}
		lines = append(lines, Line{
			Location: Location{name, lineNo + i},
			Words:    Split(s),
		})
	}
	return lines
}

// Split splits a line into words at each space. Within a pair of double
// quotes, spaces do not split; the quotes are kept as part of the word. An
// unmatched quote simply extends its word to the end of the line. Empty words,
// as between two adjacent spaces, are dropped.
func Split(line string) []string {
	var words []string
	start, quoted := 0, false
	for i, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ' ' && !quoted:
			if start < i {
				words = append(words, line[start:i])
			}
			start = i + 1
		}
	}
	if start < len(line) {
		words = append(words, line[start:])
	}
	return words
}
