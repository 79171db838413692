package match

import (
	"fmt"

	"github.com/fenceworks/piste/competitor"
)

// Side binds one competitor to its mutable match data: an optional score and
// an optional result. The competitor binding is frozen at construction.
type Side struct {
	competitor competitor.Competitor
	score      *int
	result     competitor.Result
}

// Competitor returns the bound competitor.
func (s *Side) Competitor() competitor.Competitor { return s.competitor }

// Score returns the side's score and whether one is set.
func (s *Side) Score() (int, bool) {
	if s.score == nil {
		return 0, false
	}

	return *s.score, true
}

// Result returns the side's result; competitor.NoResult when unset.
func (s *Side) Result() competitor.Result { return s.result }

// String renders the side as "<id> (<result> | <score>)" for diagnostics.
func (s *Side) String() string {
	score := "unset"
	if s.score != nil {
		score = fmt.Sprintf("%d", *s.score)
	}

	return fmt.Sprintf("%d (%s | %s)", s.competitor.ID(), s.result, score)
}

// update overwrites the score (nil clears it) and resolves this side's
// result against the opposite side. Resolution order:
//
//  1. an explicit result argument wins;
//  2. else the complement of the other side's result, when set;
//  3. else the score comparison, when both scores are set;
//  4. else the result is cleared.
//
// Only this side is recomputed; the other side is read, never written.
func (s *Side) update(other *Side, result competitor.Result, score *int) {
	if score == nil {
		s.score = nil
	} else {
		v := *score
		s.score = &v
	}

	switch {
	case result != competitor.NoResult:
		s.result = result
	case other.result != competitor.NoResult:
		s.result = other.result.Opposite()
	case s.score != nil && other.score != nil:
		s.result = resultByScores(*s.score, *other.score)
	default:
		s.result = competitor.NoResult
	}
}

// resultByScores derives a result from a score comparison: higher wins,
// equal draws.
func resultByScores(own, other int) competitor.Result {
	switch {
	case own > other:
		return competitor.Win
	case own < other:
		return competitor.Loss
	default:
		return competitor.Draw
	}
}
