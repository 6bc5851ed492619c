package results

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/garethgeorge/gosieve/internal/sieve"
	"github.com/pkg/errors"
)

// ErrMalformedReport is returned when a report file does not parse.
var ErrMalformedReport = errors.New("malformed results report")

// Header is the metadata recorded at the top of a report file.
type Header struct {
	Count  int
	Bounds sieve.Range
}

// Reader parses a saved report back into its values.
type Reader struct {
	scanner *bufio.Scanner
}

func (r *Reader) readHeader() (Header, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Header{}, err
		}
		return Header{}, errors.Wrap(ErrMalformedReport, "missing header line")
	}
	line := r.scanner.Text()

	var header Header
	n, err := fmt.Sscanf(line, "Found %d prime numbers between %d and %d:",
		&header.Count, &header.Bounds.Lo, &header.Bounds.Hi)
	if err != nil || n != 3 {
		return Header{}, errors.Wrapf(ErrMalformedReport, "bad header line %q", line)
	}

	// A single blank line separates the header from the rows.
	if r.scanner.Scan() && strings.TrimSpace(r.scanner.Text()) != "" {
		return Header{}, errors.Wrap(ErrMalformedReport, "missing separator line")
	}
	return header, r.scanner.Err()
}

// Iter returns an iterator over the values in the report's rows, in file
// order. Scan and parse failures are yielded as errors.
func (r *Reader) Iter() iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for r.scanner.Scan() {
			for _, field := range strings.Fields(r.scanner.Text()) {
				value, err := strconv.Atoi(field)
				if err != nil {
					yield(0, errors.Wrapf(ErrMalformedReport, "bad value %q", field))
					return
				}
				if !yield(value, nil) {
					return
				}
			}
		}
		if err := r.scanner.Err(); err != nil {
			yield(0, err)
		}
	}
}

// NewReader parses the report header from r and returns a Reader positioned
// at the first row of values.
func NewReader(r io.Reader) (*Reader, Header, error) {
	reader := &Reader{scanner: bufio.NewScanner(r)}
	header, err := reader.readHeader()
	if err != nil {
		return nil, Header{}, err
	}
	return reader, header, nil
}

// Load reads the report at path and returns its header and ordered values.
func Load(path string) (Header, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, errors.Wrapf(err, "open report %s", path)
	}
	defer f.Close()

	reader, header, err := NewReader(f)
	if err != nil {
		return Header{}, nil, errors.Wrapf(err, "read report %s", path)
	}

	var values []int
	for value, err := range reader.Iter() {
		if err != nil {
			return Header{}, nil, errors.Wrapf(err, "read report %s", path)
		}
		values = append(values, value)
	}
	return header, values, nil
}
