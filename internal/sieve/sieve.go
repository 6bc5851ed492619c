package sieve

// Table is a primality table: entry i reports whether i is currently
// believed prime. Tables are immutable once returned from Build.
type Table []bool

// Build constructs a primality table covering 0..upperBound using the sieve
// of Eratosthenes. Bounds below 2 yield an empty table rather than an error;
// there are no positions worth marking.
func Build(upperBound int) Table {
	if upperBound < 2 {
		return nil
	}

	table := make(Table, upperBound+1)
	// 0 and 1 stay false, everything else starts as a prime candidate.
	for i := 2; i <= upperBound; i++ {
		table[i] = true
	}

	// Candidates above sqrt(upperBound) cannot have unmarked multiples in
	// range, so the outer loop stops there.
	for i := 2; i*i <= upperBound; i++ {
		if !table[i] {
			continue
		}
		// Multiples below i*i were already struck by smaller prime factors.
		for j := i * i; j <= upperBound; j += i {
			table[j] = false
		}
	}
	return table
}

// UpperBound returns the largest index the table covers, -1 for an empty table.
func (t Table) UpperBound() int {
	return len(t) - 1
}

// IsPrime reports whether n is prime. Values outside the table's coverage
// are reported as not prime.
func (t Table) IsPrime(n int) bool {
	return n >= 0 && n < len(t) && t[n]
}

// PrimesWithin returns the primes in r in ascending order. The requested
// range is clamped to [2, UpperBound()]; a request entirely outside the
// table's coverage returns an empty result.
func (t Table) PrimesWithin(r Range) []int {
	effective := r.ClampTo(Range{Lo: 2, Hi: t.UpperBound()})
	if effective.IsEmpty() {
		return nil
	}

	var primes []int
	for i := effective.Lo; i <= effective.Hi; i++ {
		if t[i] {
			primes = append(primes, i)
		}
	}
	return primes
}
