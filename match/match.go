package match

import (
	"fmt"

	"github.com/fenceworks/piste/competitor"
)

// Match is a bout between two competitors with a validity state machine
// gating its recording. Configuration (score ceiling, draw policy) is frozen
// at construction; only the sides' scores/results and the status change.
type Match struct {
	piste        *int
	scoreCeiling int
	drawAllowed  bool

	right Side
	left  Side

	status Status
}

// NewMatch builds a Match between two distinct competitors with the given
// score ceiling and draw policy. Both sides start with score and result
// unset, so the match starts StatusIncomplete.
//
// Validation: both competitors non-nil, distinct ids, positive ceiling, and
// every option applied successfully — otherwise construction fails and no
// half-valid match is returned.
//
// The ceiling is a caller promise, not an enforced bound: side updates never
// compare scores against it.
func NewMatch(right, left competitor.Competitor, scoreCeiling int, drawAllowed bool, opts ...Option) (*Match, error) {
	if right == nil || left == nil {
		return nil, ErrNilCompetitor
	}
	if right.ID() == left.ID() {
		return nil, fmt.Errorf("%w: id %d", ErrSameCompetitor, right.ID())
	}
	if scoreCeiling <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadScoreCeiling, scoreCeiling)
	}

	m := &Match{
		scoreCeiling: scoreCeiling,
		drawAllowed:  drawAllowed,
		right:        Side{competitor: right},
		left:         Side{competitor: left},
		status:       StatusIncomplete,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Right returns the right side.
func (m *Match) Right() *Side { return &m.right }

// Left returns the left side.
func (m *Match) Left() *Side { return &m.left }

// ScoreCeiling returns the configured maximum score.
func (m *Match) ScoreCeiling() int { return m.scoreCeiling }

// DrawAllowed reports whether the draw policy permits drawn results.
func (m *Match) DrawAllowed() bool { return m.drawAllowed }

// Status returns the current recording state.
func (m *Match) Status() Status { return m.status }

// Piste returns the assigned strip number and whether one is set.
func (m *Match) Piste() (int, bool) {
	if m.piste == nil {
		return 0, false
	}

	return *m.piste, true
}

// SetPiste assigns or reassigns the strip number while the match is not
// locked. Presentation metadata only.
func (m *Match) SetPiste(n int) error {
	if m.status == StatusLocked {
		return ErrLocked
	}
	if n <= 0 {
		return ErrBadPiste
	}
	m.piste = &n

	return nil
}

// UpdateRightSide updates the right side's score and result, then refreshes
// the match status. See Update semantics on the package documentation.
func (m *Match) UpdateRightSide(result competitor.Result, score *int) error {
	return m.updateSide(&m.right, &m.left, result, score)
}

// UpdateLeftSide updates the left side's score and result, then refreshes
// the match status.
func (m *Match) UpdateLeftSide(result competitor.Result, score *int) error {
	return m.updateSide(&m.left, &m.right, result, score)
}

// updateSide applies one side update under the state machine's guards.
func (m *Match) updateSide(self, other *Side, result competitor.Result, score *int) error {
	// 1) A locked match never changes again.
	if m.status == StatusLocked {
		return ErrLocked
	}

	// 2) Validate the arguments before touching the side.
	if result > competitor.Draw {
		return fmt.Errorf("%w: %d", ErrUnknownResult, result)
	}
	if score != nil && *score < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, *score)
	}

	// 3) Rewrite the side, then reclassify the whole match.
	self.update(other, result, score)
	m.refreshStatus()

	return nil
}

// refreshStatus reclassifies the match from the current side data:
// incomplete while anything is unset, otherwise invalid or valid per the
// draw policy's rule table.
func (m *Match) refreshStatus() {
	switch {
	case m.incomplete():
		m.status = StatusIncomplete
	case m.invalid():
		m.status = StatusInvalid
	default:
		m.status = StatusValid
	}
}

// incomplete reports whether either side lacks a result or a score.
func (m *Match) incomplete() bool {
	return m.right.result == competitor.NoResult ||
		m.left.result == competitor.NoResult ||
		m.right.score == nil ||
		m.left.score == nil
}

// invalid dispatches to the rule table for the configured draw policy.
// Both sides are known complete here.
func (m *Match) invalid() bool {
	if m.drawAllowed {
		return m.invalidWithDraw()
	}

	return m.invalidWithoutDraw()
}

// invalidWithDraw applies the strict rule table:
//   - both sides sharing a non-DRAW result is invalid;
//   - a WIN score must be strictly greater than the opponent's;
//   - a LOSS score must be strictly less;
//   - DRAW scores must be exactly equal.
func (m *Match) invalidWithDraw() bool {
	if m.right.result == m.left.result && m.right.result != competitor.Draw {
		return true
	}

	return sideScoreInvalidStrict(&m.right, &m.left) ||
		sideScoreInvalidStrict(&m.left, &m.right)
}

// invalidWithoutDraw applies the no-draw rule table:
//   - any DRAW result is invalid, as is both sides sharing a result;
//   - a WIN score may not be less than the opponent's (equality tolerated:
//     the winner of a tied score line was decided off the score, e.g. by
//     priority);
//   - a LOSS score may not be greater than the opponent's.
func (m *Match) invalidWithoutDraw() bool {
	if m.right.result == m.left.result ||
		m.right.result == competitor.Draw ||
		m.left.result == competitor.Draw {
		return true
	}

	return sideScoreInvalidLenient(&m.right, &m.left) ||
		sideScoreInvalidLenient(&m.left, &m.right)
}

// sideScoreInvalidStrict checks one side's result against the scores with
// strict comparisons (draws allowed).
func sideScoreInvalidStrict(self, other *Side) bool {
	switch self.result {
	case competitor.Win:
		return *self.score <= *other.score
	case competitor.Loss:
		return *self.score >= *other.score
	case competitor.Draw:
		return *self.score != *other.score
	default:
		return false
	}
}

// sideScoreInvalidLenient checks one side's result against the scores with
// the non-strict comparisons used when draws are disallowed.
func sideScoreInvalidLenient(self, other *Side) bool {
	switch self.result {
	case competitor.Win:
		return *self.score < *other.score
	case competitor.Loss:
		return *self.score > *other.score
	default:
		return false
	}
}

// Record commits the match outcome into both competitors and locks the
// match. It fails with ErrNotValid unless the status is StatusValid.
//
// The scoring model updates both competitors in one symmetric operation, so
// a single call from the right side's perspective covers both sides. Errors
// from the scoring model (duplicate opponents) propagate and leave the match
// unlocked.
func (m *Match) Record() error {
	if m.status != StatusValid {
		return fmt.Errorf("%w: status %s", ErrNotValid, m.status)
	}

	err := m.right.competitor.RecordMatch(
		m.left.competitor,
		m.right.result,
		*m.right.score,
		*m.left.score,
	)
	if err != nil {
		return err
	}

	m.status = StatusLocked

	return nil
}

// String renders the match as "[right] VS [left]".
func (m *Match) String() string {
	return fmt.Sprintf("[%s] VS [%s]", m.right.String(), m.left.String())
}
