// Command gosieve finds prime numbers in a bounded range, displays them, and
// saves them to a flat text report. Run with no arguments it searches 1..250
// and writes results.txt.
package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/garethgeorge/gosieve/internal/primes"
	"github.com/garethgeorge/gosieve/internal/report"
	"github.com/garethgeorge/gosieve/internal/results"
	"github.com/garethgeorge/gosieve/internal/sieve"
)

func main() {
	lower := flag.Int("lower", 1, "lower bound of the search range (inclusive)")
	upper := flag.Int("upper", 250, "upper bound of the search range (inclusive)")
	format := flag.String("format", string(report.FormatColumns), "display format: list or columns")
	outputs := flag.StringSlice("output", []string{results.DefaultPath}, "report destination(s); repeat to write replicas")
	flag.Parse()

	bounds := sieve.Range{Lo: *lower, Hi: *upper}
	if flag.NArg() == 2 {
		parsed, err := primes.ParseRange(flag.Arg(0), flag.Arg(1))
		if err != nil {
			fatal(err)
		}
		bounds = parsed
	} else if flag.NArg() != 0 {
		fatal(fmt.Errorf("expected no arguments or exactly two bounds, got %d", flag.NArg()))
	}

	if err := run(bounds, report.Format(*format), *outputs); err != nil {
		fatal(err)
	}
}

func run(bounds sieve.Range, format report.Format, outputs []string) error {
	fmt.Printf("Finding prime numbers between %d and %d\n", bounds.Lo, bounds.Hi)

	found, err := primes.FindInRange(bounds.Lo, bounds.Hi)
	if err != nil {
		return err
	}

	if err := report.Print(os.Stdout, found, format); err != nil {
		return err
	}

	for _, path := range outputs {
		if err := results.Save(path, bounds, found); err != nil {
			return err
		}
	}
	if len(outputs) > 1 {
		if err := results.Verify(outputs); err != nil {
			return err
		}
	}

	fmt.Printf("\nResults have been saved to %s\n", strings.Join(outputs, ", "))
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
