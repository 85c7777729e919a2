// Package geo — coordinate-file parsing.
//
// The external input format is a plain-text stream with one city per
// line: two whitespace-separated real numbers, x then y. Blank lines are
// skipped. Any other shape (wrong token count, non-numeric token) is a
// fatal parse error; nothing is constructed from a partially valid file.
package geo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// cityTokens is the exact number of whitespace-separated tokens a
// coordinate line must contain.
const cityTokens = 2

// ParseCities reads cities from r, one per line.
//
// Contracts:
//   - Each non-blank line holds exactly two real numbers (x then y).
//   - Parsing stops at the first malformed line with ErrMalformedLine
//     wrapped together with the 1-based line number.
//   - An empty (or all-blank) stream returns an empty slice and nil error;
//     rejecting the empty instance is NewRegistry's concern.
//
// Complexity: O(total input size).
func ParseCities(r io.Reader) ([]City, error) {
	var (
		cities []City
		sc     = bufio.NewScanner(r)
		lineNo int
	)

	var (
		line   string
		fields []string
		x      float64
		y      float64
		err    error
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue // blank separator lines are tolerated
		}

		fields = strings.Fields(line)
		if len(fields) != cityTokens {
			return nil, fmt.Errorf("%w: line %d: want %d fields, got %d",
				ErrMalformedLine, lineNo, cityTokens, len(fields))
		}

		x, err = strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad x %q", ErrMalformedLine, lineNo, fields[0])
		}
		y, err = strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad y %q", ErrMalformedLine, lineNo, fields[1])
		}

		cities = append(cities, City{X: x, Y: y})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("geo: read coordinates: %w", err)
	}

	return cities, nil
}

// LoadCities opens path and delegates to ParseCities.
//
// Complexity: O(file size).
func LoadCities(path string) ([]City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geo: open coordinates: %w", err)
	}
	defer f.Close()

	return ParseCities(f)
}

// LoadRegistry loads cities from path and builds a Registry in one step.
// The usual entry point for the driver: parse errors and the empty-file
// case both surface here as sentinels.
//
// Complexity: O(file size).
func LoadRegistry(path string) (*Registry, error) {
	cities, err := LoadCities(path)
	if err != nil {
		return nil, err
	}

	return NewRegistry(cities)
}
