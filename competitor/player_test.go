// Package competitor_test validates the scoring model: symmetric match
// recording, ranking-key ordering, bye handling and reset semantics.
package competitor_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fenceworks/piste/competitor"
)

// newPlayers builds n players from one fresh Sequence, so ids are 1..n.
func newPlayers(t *testing.T, n int) []*competitor.Player {
	t.Helper()
	seq := competitor.NewSequence()
	players := make([]*competitor.Player, n)
	for i := range players {
		p, err := competitor.NewPlayer(seq)
		require.NoError(t, err)
		players[i] = p
	}

	return players
}

func TestNewPlayer_NilAllocator(t *testing.T) {
	_, err := competitor.NewPlayer(nil)
	require.ErrorIs(t, err, competitor.ErrNilAllocator)
}

func TestSequence_DeterministicIDs(t *testing.T) {
	// Each Sequence starts at 1 independently of any other Sequence.
	players := newPlayers(t, 3)
	require.Equal(t, 1, players[0].ID())
	require.Equal(t, 2, players[1].ID())
	require.Equal(t, 3, players[2].ID())

	other := newPlayers(t, 1)
	require.Equal(t, 1, other[0].ID())
}

func TestRecordMatch_SymmetricUpdate(t *testing.T) {
	ps := newPlayers(t, 2)
	a, b := ps[0], ps[1]

	require.NoError(t, a.RecordMatch(b, competitor.Win, 5, 3))

	// Winner side.
	require.Equal(t, 1, a.Victories())
	require.Equal(t, 0, a.Draws())
	require.Equal(t, 5, a.TouchesScored())
	require.Equal(t, 3, a.TouchesReceived())
	require.True(t, a.HasFaced(b.ID()))

	// Loser side: mirrored touches, no victory, no draw.
	require.Equal(t, 0, b.Victories())
	require.Equal(t, 0, b.Draws())
	require.Equal(t, 3, b.TouchesScored())
	require.Equal(t, 5, b.TouchesReceived())
	require.True(t, b.HasFaced(a.ID()))
}

func TestRecordMatch_DrawIncrementsBothDraws(t *testing.T) {
	ps := newPlayers(t, 2)
	a, b := ps[0], ps[1]

	require.NoError(t, a.RecordMatch(b, competitor.Draw, 4, 4))
	require.Equal(t, 1, a.Draws())
	require.Equal(t, 1, b.Draws())
	require.Equal(t, 0, a.Victories())
	require.Equal(t, 0, b.Victories())
}

func TestRecordMatch_DuplicateOpponent(t *testing.T) {
	ps := newPlayers(t, 2)
	a, b := ps[0], ps[1]

	require.NoError(t, a.RecordMatch(b, competitor.Win, 5, 1))

	// Recording the same pair again fails from either direction.
	require.ErrorIs(t, a.RecordMatch(b, competitor.Loss, 1, 5), competitor.ErrAlreadyFaced)
	require.ErrorIs(t, b.RecordMatch(a, competitor.Win, 5, 1), competitor.ErrAlreadyFaced)

	// And the failed attempts changed nothing.
	require.Equal(t, 1, a.Victories())
	require.Equal(t, []int{b.ID()}, a.Opponents())
}

func TestRecordMatch_Validation(t *testing.T) {
	ps := newPlayers(t, 2)
	a, b := ps[0], ps[1]

	require.ErrorIs(t, a.RecordMatch(nil, competitor.Win, 5, 1), competitor.ErrNilOpponent)
	require.ErrorIs(t, a.RecordMatch(a, competitor.Win, 5, 1), competitor.ErrSelfOpponent)
	require.ErrorIs(t, a.RecordMatch(b, competitor.NoResult, 5, 1), competitor.ErrNoResult)
	require.ErrorIs(t, a.RecordMatch(b, competitor.Win, -1, 0), competitor.ErrNegativeTouches)
	require.ErrorIs(t, a.RecordMatch(b, competitor.Win, 0, -1), competitor.ErrNegativeTouches)

	// No partial mutation leaked from the rejected calls.
	require.Empty(t, a.Opponents())
	require.Empty(t, b.Opponents())
	require.Equal(t, 0, a.TouchesScored())
}

func TestAddBye(t *testing.T) {
	ps := newPlayers(t, 1)
	p := ps[0]

	require.False(t, p.Exempted())
	require.NoError(t, p.AddBye())
	require.True(t, p.Exempted())
	require.ErrorIs(t, p.AddBye(), competitor.ErrAlreadyExempted)
}

func TestReset_KeepsID(t *testing.T) {
	ps := newPlayers(t, 2)
	a, b := ps[0], ps[1]

	require.NoError(t, a.RecordMatch(b, competitor.Win, 5, 2))
	require.NoError(t, a.AddBye())

	id := a.ID()
	a.Reset()

	require.Equal(t, id, a.ID())
	require.Zero(t, a.Victories())
	require.Zero(t, a.Draws())
	require.Zero(t, a.TouchesScored())
	require.Zero(t, a.TouchesReceived())
	require.Empty(t, a.Opponents())
	require.False(t, a.Exempted())

	// A reset player may face the same opponent again.
	b.Reset()
	require.NoError(t, a.RecordMatch(b, competitor.Draw, 3, 3))
}

func TestScore_LexicographicOrder(t *testing.T) {
	// Score components dominate in order: record, indicator, touches scored.
	base := competitor.Score{
		Record:        competitor.Record{Victories: 2, Draws: 1},
		Indicator:     3,
		TouchesScored: 20,
	}

	cases := []struct {
		name  string
		other competitor.Score
		want  int
	}{
		{"equal", base, 0},
		{"more victories wins", competitor.Score{
			Record: competitor.Record{Victories: 3}, Indicator: -10, TouchesScored: 0,
		}, -1},
		{"draws break victory ties", competitor.Score{
			Record: competitor.Record{Victories: 2, Draws: 2}, Indicator: -10,
		}, -1},
		{"indicator breaks record ties", competitor.Score{
			Record: competitor.Record{Victories: 2, Draws: 1}, Indicator: 4, TouchesScored: 0,
		}, -1},
		{"touches break indicator ties", competitor.Score{
			Record: competitor.Record{Victories: 2, Draws: 1}, Indicator: 3, TouchesScored: 25,
		}, -1},
		{"worse record loses", competitor.Score{
			Record: competitor.Record{Victories: 1, Draws: 9}, Indicator: 99, TouchesScored: 99,
		}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, base.Compare(tc.other))
			require.Equal(t, -tc.want, tc.other.Compare(base))
		})
	}
}

func TestScore_RecomputedOnDemand(t *testing.T) {
	ps := newPlayers(t, 2)
	a, b := ps[0], ps[1]

	before := a.Score()
	require.Equal(t, competitor.Score{}, before)

	require.NoError(t, a.RecordMatch(b, competitor.Win, 5, 2))

	after := a.Score()
	require.Equal(t, competitor.Record{Victories: 1}, after.Record)
	require.Equal(t, 3, after.Indicator)
	require.Equal(t, 5, after.TouchesScored)
}

func TestScore_SortStability(t *testing.T) {
	// Equal scores must keep their prior relative order under a stable sort,
	// the ordering contract the round engine relies on.
	ps := newPlayers(t, 4)
	ranked := []*competitor.Player{ps[2], ps[0], ps[3], ps[1]}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score().Compare(ranked[j].Score()) > 0
	})

	require.Equal(t, []*competitor.Player{ps[2], ps[0], ps[3], ps[1]}, ranked)
}
