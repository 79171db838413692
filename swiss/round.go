package swiss

import (
	"fmt"
	"sort"

	"github.com/fenceworks/piste/competitor"
	"github.com/fenceworks/piste/match"
	"github.com/fenceworks/piste/matching"
	"github.com/fenceworks/piste/pairgraph"
)

// Round is one fully paired tournament round. All fields are set at
// construction and never change afterwards.
type Round struct {
	rank         int
	scoreCeiling int
	drawAllowed  bool

	matches []*match.Match
	bye     competitor.Competitor
}

// NewRound pairs the roster into the round's matches.
//
// The roster slice is sorted in place by score, best first, as a visible
// side effect. rank is the one-based round number; scoreCeiling and
// drawAllowed configure every produced match.
//
// Construction never mutates a competitor: statistics change only when the
// produced matches are recorded, and marking the bye competitor exempted
// (AddBye) stays with the caller. On error no partial match list exists.
func NewRound(rank, scoreCeiling int, drawAllowed bool, roster []competitor.Competitor) (*Round, error) {
	// 1) Validate the configuration and the roster itself.
	if rank <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRank, rank)
	}
	if scoreCeiling <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadScoreCeiling, scoreCeiling)
	}
	seen := make(map[int]struct{}, len(roster))
	for _, c := range roster {
		if c == nil {
			return nil, ErrNilCompetitor
		}
		if _, dup := seen[c.ID()]; dup {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateCompetitor, c.ID())
		}
		seen[c.ID()] = struct{}{}
	}

	// 2) Rank the roster. Stable, so equal scores keep their prior order.
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[j].Score().Less(roster[i].Score())
	})

	// 3) Designate the bye on an odd field: the lowest-ranked competitor
	//    that has not yet sat a round out.
	competing := append([]competitor.Competitor(nil), roster...)
	var bye competitor.Competitor
	if len(competing)%2 != 0 {
		i := len(competing) - 1
		for i >= 0 && competing[i].Exempted() {
			i--
		}
		if i < 0 {
			return nil, ErrNoByeCandidate
		}
		bye = competing[i]
		competing = append(competing[:i], competing[i+1:]...)
	}

	// 4) Group by record and even out every group but the last.
	groups := groupByRecord(competing)
	for i := 0; i < len(groups)-1; i++ {
		if len(groups[i])%2 != 0 {
			last := len(groups[i]) - 1
			moved := groups[i][last]
			groups[i] = groups[i][:last]
			groups[i+1] = append([]competitor.Competitor{moved}, groups[i+1]...)
		}
	}

	// 5) Pair group by group, merging on infeasibility. The invariant is
	//    that paired[k] holds the resolved pairs of groups[k] for k < i.
	var paired [][]matching.Pair
	i := 0
	for i < len(groups) {
		pairs, err := matchGroup(groups[i])
		if err != nil {
			return nil, err
		}
		if len(pairs) == len(groups[i])/2 {
			paired = append(paired, pairs)
			i++
			continue
		}

		switch {
		case i+1 < len(groups):
			// Absorb the next group and retry from the same position.
			groups[i] = append(groups[i], groups[i+1]...)
			groups = append(groups[:i+1], groups[i+2:]...)
		case i > 0:
			// Last group: fold backward into the previous one, giving up
			// that group's matches, and retry from there.
			groups[i-1] = append(groups[i-1], groups[i]...)
			groups = groups[:i]
			paired = paired[:len(paired)-1]
			i--
		default:
			return nil, ErrUnmatchable
		}
	}

	// 6) Materialize the matches, better-ranked competitor on the right.
	var matches []*match.Match
	for k, pairs := range paired {
		group := groups[k]
		for _, p := range pairs {
			m, err := match.NewMatch(group[p.U], group[p.V], scoreCeiling, drawAllowed)
			if err != nil {
				return nil, err
			}
			matches = append(matches, m)
		}
	}

	return &Round{
		rank:         rank,
		scoreCeiling: scoreCeiling,
		drawAllowed:  drawAllowed,
		matches:      matches,
		bye:          bye,
	}, nil
}

// groupByRecord partitions an already-sorted field into runs sharing the
// same win/draw record, best record first.
func groupByRecord(competing []competitor.Competitor) [][]competitor.Competitor {
	var groups [][]competitor.Competitor
	for _, c := range competing {
		n := len(groups)
		if n > 0 && groups[n-1][0].Record().Compare(c.Record()) == 0 {
			groups[n-1] = append(groups[n-1], c)
			continue
		}
		groups = append(groups, []competitor.Competitor{c})
	}

	return groups
}

// matchGroup computes a minimum-weight matching of one group under the
// rematch exclusions. Vertices are group positions; an edge joins every
// pair that has not met, weighted |Δrank − n/2| to favour pairing the top
// half against the bottom half. Fewer than n/2 pairs back means the group
// is infeasible on its own.
func matchGroup(group []competitor.Competitor) ([]matching.Pair, error) {
	g := pairgraph.NewGraph()
	half := int64(len(group) / 2)

	for i := range group {
		g.AddVertex(i)
		for j := i + 1; j < len(group); j++ {
			if group[i].HasFaced(group[j].ID()) {
				continue
			}
			w := int64(j-i) - half
			if w < 0 {
				w = -w
			}
			if err := g.AddEdge(i, j, w); err != nil {
				return nil, err
			}
		}
	}

	return matching.MinWeight(g)
}

// Rank returns the one-based round number.
func (r *Round) Rank() int { return r.rank }

// ScoreCeiling returns the score ceiling configured on every match.
func (r *Round) ScoreCeiling() int { return r.scoreCeiling }

// DrawAllowed reports whether the round's matches permit drawn results.
func (r *Round) DrawAllowed() bool { return r.drawAllowed }

// Matches returns the round's matches in group order, best group first.
func (r *Round) Matches() []*match.Match {
	return append([]*match.Match(nil), r.matches...)
}

// Bye returns the competitor sitting this round out, or nil.
func (r *Round) Bye() competitor.Competitor { return r.bye }
