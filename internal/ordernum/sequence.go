// Package ordernum issues human-readable order numbers of the form
// ORD-YYMMDD-NNNNN, where the 5-digit suffix comes from a seeded
// linear-congruential generator so the suffix sequence is reproducible
// across runs.
package ordernum

import (
	"fmt"
	"time"
)

// DefaultSeed is the LCG seed used by production runs.
const DefaultSeed = 42

// Classic glibc-style LCG parameters.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
	suffixModulus = 100000
)

// Sequence issues unique order numbers for one generation run. It owns
// the LCG state and the set of already-issued numbers; pass it by
// reference into the synthesizer rather than sharing package state.
type Sequence struct {
	state  int64
	issued map[string]struct{}
}

// NewSequence creates a sequence starting from the given seed.
func NewSequence(seed int64) *Sequence {
	return &Sequence{
		state:  seed,
		issued: make(map[string]struct{}),
	}
}

// advance steps the LCG once and returns the new state.
func (s *Sequence) advance() int64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return s.state
}

// Next returns a fresh order number for the given date, retrying on
// collision with any number issued earlier in the run. The LCG period
// is far larger than any realistic run, so the retry loop terminates
// in practice.
func (s *Sequence) Next(date time.Time) string {
	for {
		suffix := s.advance() % suffixModulus
		number := fmt.Sprintf("ORD-%s-%05d", date.Format("060102"), suffix)
		if _, dup := s.issued[number]; dup {
			continue
		}
		s.issued[number] = struct{}{}
		return number
	}
}

// Issued reports how many numbers this sequence has handed out.
func (s *Sequence) Issued() int {
	return len(s.issued)
}
