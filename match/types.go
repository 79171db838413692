// Package match defines the bout status enum, sentinel errors and
// construction options.
package match

import "errors"

// Sentinel errors returned by match construction and mutation.
var (
	// ErrNilCompetitor indicates a nil competitor passed to NewMatch.
	ErrNilCompetitor = errors.New("match: competitor is nil")

	// ErrSameCompetitor indicates both sides referencing one competitor.
	ErrSameCompetitor = errors.New("match: match must have two different competitors")

	// ErrBadScoreCeiling indicates a non-positive score ceiling.
	ErrBadScoreCeiling = errors.New("match: score ceiling must be positive")

	// ErrBadPiste indicates a non-positive piste number.
	ErrBadPiste = errors.New("match: piste number must be positive")

	// ErrNegativeScore indicates a negative score passed to a side update.
	ErrNegativeScore = errors.New("match: score must be non-negative")

	// ErrUnknownResult indicates a result value outside the enum.
	ErrUnknownResult = errors.New("match: unknown result value")

	// ErrLocked indicates a mutation attempted after the match was recorded.
	ErrLocked = errors.New("match: match is locked and cannot be updated")

	// ErrNotValid indicates Record called while the status is not StatusValid.
	ErrNotValid = errors.New("match: cannot record a match that is not valid")
)

// Status is the recording state of a match.
type Status uint8

const (
	// StatusIncomplete means at least one side still lacks a score or a
	// result. Initial state.
	StatusIncomplete Status = iota

	// StatusValid means both sides are complete and mutually consistent;
	// the match may be recorded.
	StatusValid

	// StatusInvalid means both sides are complete but the results and
	// scores contradict each other.
	StatusInvalid

	// StatusLocked means the match has been recorded. Terminal.
	StatusLocked
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Option configures optional match metadata at construction.
type Option func(*Match) error

// WithPiste assigns the playing strip number; must be positive. Pure
// presentation metadata: it never participates in validity.
func WithPiste(n int) Option {
	return func(m *Match) error {
		if n <= 0 {
			return ErrBadPiste
		}
		piste := n
		m.piste = &piste

		return nil
	}
}
