package sieve

import "fmt"

// EmptyRange is a range that is always empty
var EmptyRange = Range{Lo: -1, Hi: -2}

// Range is an inclusive range of integers.
type Range struct {
	// The lower bound of the range (inclusive)
	Lo int
	// The upper bound of the range (inclusive)
	Hi int
}

func (r Range) IsEmpty() bool {
	return r.Hi < r.Lo
}

func (r Range) Size() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo + 1
}

func (r Range) Contains(n int) bool {
	return r.Lo <= n && n <= r.Hi
}

// ClampTo intersects r with other, silently raising the lower bound and
// lowering the upper bound as needed. The result may be empty.
func (r Range) ClampTo(other Range) Range {
	clamped := r
	if other.Lo > clamped.Lo {
		clamped.Lo = other.Lo
	}
	if other.Hi < clamped.Hi {
		clamped.Hi = other.Hi
	}
	return clamped
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}
