package swiss

import "errors"

// Sentinel errors returned by round construction.
var (
	// ErrUnmatchable indicates that no feasible pairing exists even after
	// exhausting group merges. The round is not constructed.
	ErrUnmatchable = errors.New("swiss: no feasible pairing for the round")

	// ErrNoByeCandidate indicates an odd roster in which every competitor
	// is already exempted, leaving nobody eligible for the bye.
	ErrNoByeCandidate = errors.New("swiss: no competitor eligible for a bye")

	// ErrBadRank indicates a non-positive round rank.
	ErrBadRank = errors.New("swiss: round rank must be positive")

	// ErrBadScoreCeiling indicates a non-positive score ceiling.
	ErrBadScoreCeiling = errors.New("swiss: score ceiling must be positive")

	// ErrNilCompetitor indicates a nil entry in the roster.
	ErrNilCompetitor = errors.New("swiss: roster contains a nil competitor")

	// ErrDuplicateCompetitor indicates two roster entries sharing an id.
	ErrDuplicateCompetitor = errors.New("swiss: roster contains a duplicate competitor")
)
