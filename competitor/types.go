// Package competitor defines the ranking keys, the match-result enum and the
// identifier allocator shared by every competitor implementation.
package competitor

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the scoring model.
var (
	// ErrAlreadyFaced indicates a match being recorded between two
	// competitors whose opponents sets already contain each other.
	ErrAlreadyFaced = errors.New("competitor: competitors have already faced each other")

	// ErrNegativeTouches indicates that a negative touch count was supplied
	// to RecordMatch.
	ErrNegativeTouches = errors.New("competitor: touches must be non-negative")

	// ErrAlreadyExempted indicates a bye granted to a competitor whose
	// exemption flag is already set.
	ErrAlreadyExempted = errors.New("competitor: competitor has already been exempted")

	// ErrNilOpponent indicates a nil opponent passed to RecordMatch.
	ErrNilOpponent = errors.New("competitor: opponent is nil")

	// ErrSelfOpponent indicates an attempt to record a match between a
	// competitor and itself. The opponents set never contains the owner's id.
	ErrSelfOpponent = errors.New("competitor: competitor cannot face itself")

	// ErrNoResult indicates that RecordMatch was called with the unset
	// Result zero value.
	ErrNoResult = errors.New("competitor: match result is unset")

	// ErrBirthdateInFuture indicates a fencer birthdate later than today.
	ErrBirthdateInFuture = errors.New("competitor: birthdate cannot be in the future")

	// ErrBirthdateTooOld indicates a fencer birthdate beyond MaxAge years back.
	ErrBirthdateTooOld = errors.New("competitor: birthdate exceeds the maximum age")

	// ErrBadLicence indicates a negative licence number.
	ErrBadLicence = errors.New("competitor: licence must be non-negative")

	// ErrBadRank indicates a negative initial rank.
	ErrBadRank = errors.New("competitor: rank must be non-negative")

	// ErrNilAllocator indicates a nil IDAllocator passed to a constructor.
	ErrNilAllocator = errors.New("competitor: id allocator is nil")
)

// Result is the outcome of a match from one side's perspective.
// The zero value NoResult means "not decided yet".
type Result uint8

const (
	// NoResult marks an undecided side. It is never recorded.
	NoResult Result = iota

	// Win marks the side that won the match.
	Win

	// Loss marks the side that lost the match.
	Loss

	// Draw marks both sides of a drawn match.
	Draw
)

// String returns the lowercase name of the result.
func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// Opposite returns the complementary result for the other side of a match:
// Win↔Loss, Draw↔Draw. NoResult maps to NoResult.
func (r Result) Opposite() Result {
	switch r {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return r
	}
}

// Record is a competitor's win/draw count, the primary ranking component and
// the key the pairing engine groups cohorts by.
type Record struct {
	Victories int
	Draws     int
}

// Compare orders records lexicographically: victories first, then draws.
// It returns -1 if r < o, 0 if equal, +1 if r > o.
func (r Record) Compare(o Record) int {
	if r.Victories != o.Victories {
		return cmpInt(r.Victories, o.Victories)
	}

	return cmpInt(r.Draws, o.Draws)
}

// Score is the full ranking key: record, then touch indicator
// (scored − received), then raw touches scored. Larger is better.
type Score struct {
	Record        Record
	Indicator     int
	TouchesScored int
}

// Compare orders scores lexicographically. It returns -1 if s < o, 0 if
// equal, +1 if s > o.
func (s Score) Compare(o Score) int {
	if c := s.Record.Compare(o.Record); c != 0 {
		return c
	}
	if s.Indicator != o.Indicator {
		return cmpInt(s.Indicator, o.Indicator)
	}

	return cmpInt(s.TouchesScored, o.TouchesScored)
}

// Less reports whether s ranks strictly below o.
func (s Score) Less(o Score) bool { return s.Compare(o) < 0 }

// String renders the score as "((V,D) I T)" for diagnostics.
func (s Score) String() string {
	return fmt.Sprintf("((%d,%d) %+d %d)",
		s.Record.Victories, s.Record.Draws, s.Indicator, s.TouchesScored)
}

// IDAllocator vends competitor identifiers. Implementations must return a
// value never returned before for the lifetime of the allocator.
type IDAllocator interface {
	// NextID returns the next unused identifier.
	NextID() int
}

// Sequence is the standard IDAllocator: a monotonically increasing counter
// starting at 1. The zero value is not usable; call NewSequence.
type Sequence struct {
	next int
}

// NewSequence returns a Sequence whose first NextID call yields 1.
func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// NextID returns the next identifier and advances the counter.
func (s *Sequence) NextID() int {
	id := s.next
	s.next++

	return id
}

// cmpInt is a three-way integer comparison.
func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
