// Package csvfile reads the flat comma-separated inputs of the report.
// Only the fixed layouts of those files are supported: fields are split on every comma,
// there is no quoting or escaping.
package csvfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/de-tools/block-atlas/pkg/models/domain"
)

// Row is one non-blank input line split into trimmed fields.
type Row struct {
	File   string
	Line   int
	Fields []string
}

// ReadRows calls fn for every non-blank line of path, in file order.
// Reading stops at the first error returned by fn. The file is closed on every path.
func ReadRows(path string, fn func(Row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrMissingFile, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		if err := fn(Row{File: path, Line: line, Fields: fields}); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s: read failed: %w", domain.ErrMissingFile, path, err)
	}
	return nil
}

// Malformed builds a row error for this line.
func (r Row) Malformed(reason string, err error) error {
	return domain.NewRowError(r.File, r.Line, reason, err)
}

// Expect checks the row has exactly n fields.
func (r Row) Expect(n int) error {
	if len(r.Fields) != n {
		return r.Malformed(fmt.Sprintf("expected %d fields, got %d", n, len(r.Fields)), nil)
	}
	return nil
}

// AtLeast checks the row has n fields or more.
func (r Row) AtLeast(n int) error {
	if len(r.Fields) < n {
		return r.Malformed(fmt.Sprintf("expected at least %d fields, got %d", n, len(r.Fields)), nil)
	}
	return nil
}

// Field returns field i, named for error messages.
func (r Row) Field(i int, name string) (string, error) {
	if i < 0 || i >= len(r.Fields) {
		return "", r.Malformed(fmt.Sprintf("missing field %d (%s)", i, name), nil)
	}
	return r.Fields[i], nil
}

func (r Row) Int(i int, name string) (int64, error) {
	s, err := r.Field(i, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, r.Malformed(fmt.Sprintf("field %d (%s) is not an integer: %q", i, name, s), err)
	}
	return v, nil
}

func (r Row) Float(i int, name string) (float64, error) {
	s, err := r.Field(i, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.Malformed(fmt.Sprintf("field %d (%s) is not a number: %q", i, name, s), err)
	}
	return v, nil
}
