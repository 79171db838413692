package competitor

import "sort"

// Competitor is the contract the match and pairing packages consume: a frozen
// identifier, a totally ordered ranking key, the opponents-faced set, the
// exemption flag, and the three mutating operations of the scoring model.
//
// Implementations outside this package embed Player, which provides the
// unexported symmetric-recording method.
type Competitor interface {
	// ID returns the frozen identifier assigned at construction.
	ID() int

	// Score returns the current ranking key, recomputed from statistics.
	Score() Score

	// Record returns the (victories, draws) component of the score.
	Record() Record

	// Exempted reports whether the competitor has already received a bye.
	Exempted() bool

	// HasFaced reports whether the competitor has already faced id.
	HasFaced(id int) bool

	// RecordMatch commits one match outcome into both competitors.
	RecordMatch(opponent Competitor, selfResult Result, touchesScored, touchesReceived int) error

	// AddBye marks the competitor as exempted.
	AddBye() error

	// Reset zeroes all statistics and tracking; the id is untouched.
	Reset()

	// recordSide applies one side of an already-validated match.
	recordSide(opponentID int, selfResult Result, touchesScored, touchesReceived int)
}

// Player is the base scoring record: identity plus cumulative statistics.
// All fields are unexported; the id is frozen at construction and every
// statistic changes only through RecordMatch, AddBye and Reset.
type Player struct {
	id int

	victories int
	draws     int

	touchesScored   int
	touchesReceived int

	opponents map[int]struct{}
	exempted  bool
}

// compile-time contract check
var _ Competitor = (*Player)(nil)

// NewPlayer returns a fresh Player with an id drawn from alloc and all
// statistics at zero.
func NewPlayer(alloc IDAllocator) (*Player, error) {
	if alloc == nil {
		return nil, ErrNilAllocator
	}

	return &Player{
		id:        alloc.NextID(),
		opponents: make(map[int]struct{}),
	}, nil
}

// ID returns the frozen identifier.
func (p *Player) ID() int { return p.id }

// Victories returns the number of matches won.
func (p *Player) Victories() int { return p.victories }

// Draws returns the number of matches drawn.
func (p *Player) Draws() int { return p.draws }

// TouchesScored returns the cumulative touches scored.
func (p *Player) TouchesScored() int { return p.touchesScored }

// TouchesReceived returns the cumulative touches received.
func (p *Player) TouchesReceived() int { return p.touchesReceived }

// Exempted reports whether the player has already received a bye.
func (p *Player) Exempted() bool { return p.exempted }

// Record returns the (victories, draws) ranking component.
func (p *Player) Record() Record {
	return Record{Victories: p.victories, Draws: p.draws}
}

// Indicator returns the touch differential (scored − received).
func (p *Player) Indicator() int { return p.touchesScored - p.touchesReceived }

// Score returns the full ranking key. It is recomputed on every call; there
// is no cached copy.
func (p *Player) Score() Score {
	return Score{
		Record:        p.Record(),
		Indicator:     p.Indicator(),
		TouchesScored: p.touchesScored,
	}
}

// HasFaced reports whether id is in the opponents set. The set never
// contains the player's own id.
func (p *Player) HasFaced(id int) bool {
	_, ok := p.opponents[id]

	return ok
}

// Opponents returns the ids already faced, in ascending order.
func (p *Player) Opponents() []int {
	ids := make([]int, 0, len(p.opponents))
	for id := range p.opponents {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// RecordMatch commits one match outcome into this player and the opponent.
// Both sides change together: victories or draws per selfResult (a Loss
// increments neither), touches added, and each id inserted into the other's
// opponents set.
//
// Error conditions, checked before any mutation:
//   - ErrNilOpponent     : opponent is nil.
//   - ErrSelfOpponent    : opponent shares this player's id.
//   - ErrNoResult        : selfResult is the unset zero value.
//   - ErrAlreadyFaced    : either opponents set already lists the other id.
//   - ErrNegativeTouches : a negative touch count was supplied.
func (p *Player) RecordMatch(opponent Competitor, selfResult Result, touchesScored, touchesReceived int) error {
	// 1) Validate the pairing itself.
	if opponent == nil {
		return ErrNilOpponent
	}
	if opponent.ID() == p.id {
		return ErrSelfOpponent
	}

	// 2) Validate the supplied outcome.
	if selfResult == NoResult {
		return ErrNoResult
	}
	if p.HasFaced(opponent.ID()) || opponent.HasFaced(p.id) {
		return ErrAlreadyFaced
	}
	if touchesScored < 0 || touchesReceived < 0 {
		return ErrNegativeTouches
	}

	// 3) Apply both sides. All checks passed, so from the caller's
	//    perspective the two updates land together.
	p.recordSide(opponent.ID(), selfResult, touchesScored, touchesReceived)
	opponent.recordSide(p.id, selfResult.Opposite(), touchesReceived, touchesScored)

	return nil
}

// recordSide applies one side of an already-validated match.
func (p *Player) recordSide(opponentID int, selfResult Result, touchesScored, touchesReceived int) {
	switch selfResult {
	case Win:
		p.victories++
	case Draw:
		p.draws++
	}

	p.touchesScored += touchesScored
	p.touchesReceived += touchesReceived
	p.opponents[opponentID] = struct{}{}
}

// AddBye marks the player as exempted. It fails with ErrAlreadyExempted if
// the flag is already set; a player receives at most one bye per tournament.
func (p *Player) AddBye() error {
	if p.exempted {
		return ErrAlreadyExempted
	}
	p.exempted = true

	return nil
}

// Reset zeroes all statistics and clears the opponents set and the exemption
// flag. The id is untouched.
func (p *Player) Reset() {
	p.victories = 0
	p.draws = 0
	p.touchesScored = 0
	p.touchesReceived = 0
	p.opponents = make(map[int]struct{})
	p.exempted = false
}
