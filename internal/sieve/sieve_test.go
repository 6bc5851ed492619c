package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isPrimeByTrialDivision is the reference implementation the sieve is
// cross-checked against.
func isPrimeByTrialDivision(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestBuild_SubTwoBounds(t *testing.T) {
	for _, upperBound := range []int{-100, -1, 0, 1} {
		table := Build(upperBound)
		assert.Len(t, table, 0, "Build(%d) should produce an empty table", upperBound)
	}
}

func TestBuild_MinimalTable(t *testing.T) {
	table := Build(2)
	require.Len(t, table, 3)
	assert.False(t, table[0])
	assert.False(t, table[1])
	assert.True(t, table[2])
	assert.Equal(t, 2, table.UpperBound())
}

func TestBuild_MatchesTrialDivision(t *testing.T) {
	const upperBound = 500
	table := Build(upperBound)
	require.Len(t, table, upperBound+1)
	for i := 0; i <= upperBound; i++ {
		assert.Equal(t, isPrimeByTrialDivision(i), table[i], "mismatch at %d", i)
	}
}

func TestPrimesWithin_KnownPrimes(t *testing.T) {
	table := Build(30)
	primes := table.PrimesWithin(Range{Lo: 1, Hi: 30})
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)
}

func TestPrimesWithin_Clamping(t *testing.T) {
	table := Build(50)

	// Lower bounds below 2 are raised to 2, never an error.
	assert.Equal(t, []int{2, 3, 5}, table.PrimesWithin(Range{Lo: -10, Hi: 5}))

	// Upper bounds beyond the table's coverage are lowered, never a fault.
	beyond := table.PrimesWithin(Range{Lo: 40, Hi: 1000})
	assert.Equal(t, []int{41, 43, 47}, beyond)

	// A range entirely outside prime territory comes back empty.
	assert.Empty(t, table.PrimesWithin(Range{Lo: 0, Hi: 1}))
	assert.Empty(t, table.PrimesWithin(Range{Lo: 60, Hi: 70}))
	assert.Empty(t, table.PrimesWithin(EmptyRange))
}

func TestPrimesWithin_StrictlyIncreasing(t *testing.T) {
	table := Build(1000)
	primes := table.PrimesWithin(Range{Lo: 0, Hi: 1000})
	require.NotEmpty(t, primes)
	for i := 1; i < len(primes); i++ {
		assert.Greater(t, primes[i], primes[i-1])
	}
	assert.GreaterOrEqual(t, primes[0], 2)
	assert.LessOrEqual(t, primes[len(primes)-1], 1000)
}

func TestIsPrime(t *testing.T) {
	table := Build(20)
	assert.True(t, table.IsPrime(2))
	assert.True(t, table.IsPrime(19))
	assert.False(t, table.IsPrime(0))
	assert.False(t, table.IsPrime(1))
	assert.False(t, table.IsPrime(20))
	assert.False(t, table.IsPrime(-3))
	assert.False(t, table.IsPrime(21)) // outside coverage
}
