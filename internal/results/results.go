// Package results persists prime query results as flat text reports and
// reads them back.
package results

import (
	"bufio"
	"fmt"
	"os"

	"github.com/garethgeorge/gosieve/internal/report"
	"github.com/garethgeorge/gosieve/internal/sieve"
	"github.com/pkg/errors"
)

// DefaultPath is where results are saved when no destination is given.
const DefaultPath = "results.txt"

// Save writes primes to a report file at path, replacing any previous report
// there. The header records the bounds that were actually queried. Removal
// and write failures propagate unmasked; the file handle is released on all
// exit paths.
func Save(path string, bounds sieve.Range, primes []int) error {
	// Replace-not-append: drop any stale report first.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove stale report %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create report %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "Found %d prime numbers between %d and %d: \n\n", len(primes), bounds.Lo, bounds.Hi); err != nil {
		return errors.Wrapf(err, "write report header %s", path)
	}
	if err := report.WriteRows(w, primes); err != nil {
		return errors.Wrapf(err, "write report rows %s", path)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "flush report %s", path)
	}
	return errors.Wrapf(f.Close(), "close report %s", path)
}
