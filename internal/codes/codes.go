// Package codes reads door code lists and extracts the numeric part of codes.
package codes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ErrNoDigits is returned for a code without a numeric part.
var ErrNoDigits = errors.New("code has no digits")

// Parse reads one code per line. Blank lines are skipped and surrounding
// whitespace is trimmed.
func Parse(r io.Reader) ([]string, error) {
	var codes []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			codes = append(codes, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read codes: %w", err)
	}
	return codes, nil
}

// ReadFile parses the codes stored in file name.
func ReadFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// NumericValue returns the integer formed by the digits of code, e.g. 29 for
// "029A".
func NumericValue(code string) (int, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, code)
	if digits == "" {
		return 0, fmt.Errorf("%q: %w", code, ErrNoDigits)
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", code, err)
	}
	return v, nil
}
