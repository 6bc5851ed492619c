// Package report renders prime query results for display.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Format selects how Print renders a result.
type Format string

const (
	// FormatList renders every value on a single comma-separated line.
	FormatList Format = "list"
	// FormatColumns renders values in rows of ten, right-aligned.
	FormatColumns Format = "columns"
)

const (
	valuesPerRow = 10
	valueWidth   = 6
)

// Print renders primes to w in the requested format. An empty result prints
// a fixed not-found line regardless of format. Unknown formats fall back to
// the count plus the raw sequence.
func Print(w io.Writer, primes []int, format Format) error {
	if len(primes) == 0 {
		_, err := fmt.Fprintln(w, "No prime numbers found in the given range.")
		return errors.Wrap(err, "print report")
	}

	switch format {
	case FormatList:
		if _, err := fmt.Fprintf(w, "Found %d prime numbers: %s\n", len(primes), joinValues(primes)); err != nil {
			return errors.Wrap(err, "print report")
		}
	case FormatColumns:
		if _, err := fmt.Fprintf(w, "Found %d prime numbers:\n", len(primes)); err != nil {
			return errors.Wrap(err, "print report")
		}
		if err := WriteRows(w, primes); err != nil {
			return errors.Wrap(err, "print report")
		}
	default:
		if _, err := fmt.Fprintf(w, "Found %d prime numbers: %v\n", len(primes), primes); err != nil {
			return errors.Wrap(err, "print report")
		}
	}
	return nil
}

// WriteRows writes values in rows of ten, each value right-aligned to a
// six-character field, fields separated by single spaces. The persisted
// report and the columns display share this layout.
func WriteRows(w io.Writer, values []int) error {
	for start := 0; start < len(values); start += valuesPerRow {
		end := start + valuesPerRow
		if end > len(values) {
			end = len(values)
		}
		fields := make([]string, 0, valuesPerRow)
		for _, v := range values[start:end] {
			fields = append(fields, fmt.Sprintf("%*d", valueWidth, v))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}

func joinValues(values []int) string {
	fields := make([]string, 0, len(values))
	for _, v := range values {
		fields = append(fields, strconv.Itoa(v))
	}
	return strings.Join(fields, ", ")
}
