package competitor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fenceworks/piste/competitor"
)

func TestNewFencer_NormalizesNames(t *testing.T) {
	f, err := competitor.NewFencer(competitor.NewSequence(), "  du pont ", " jean-luc ")
	require.NoError(t, err)

	require.Equal(t, "DU PONT", f.Lastname())
	require.Equal(t, "Jean-Luc", f.Firstname())
	require.Equal(t, "DU PONT Jean-Luc", f.String())
}

func TestNewFencer_Options(t *testing.T) {
	birth := time.Date(1994, time.March, 12, 0, 0, 0, 0, time.UTC)
	f, err := competitor.NewFencer(competitor.NewSequence(), "Leroy", "Anne",
		competitor.WithBirthdate(birth),
		competitor.WithGender(competitor.Femme),
		competitor.WithClub(" cercle d'escrime "),
		competitor.WithLicence(4471),
		competitor.WithRank(12),
	)
	require.NoError(t, err)

	got, ok := f.Birthdate()
	require.True(t, ok)
	require.Equal(t, birth, got)
	require.Equal(t, competitor.Femme, f.Gender())
	require.Equal(t, "Femme", f.Gender().String())
	require.Equal(t, "CERCLE D'ESCRIME", f.Club())
	licence, ok := f.Licence()
	require.True(t, ok)
	require.Equal(t, 4471, licence)
	require.Equal(t, 12, f.Rank())
}

func TestNewFencer_Defaults(t *testing.T) {
	f, err := competitor.NewFencer(competitor.NewSequence(), "Leroy", "Anne")
	require.NoError(t, err)

	_, declared := f.Birthdate()
	require.False(t, declared)
	_, declared = f.Licence()
	require.False(t, declared)
	require.Equal(t, competitor.GenderUnspecified, f.Gender())
	require.Empty(t, f.Club())
	require.Zero(t, f.Rank())
}

func TestNewFencer_ConstructionFailures(t *testing.T) {
	seq := competitor.NewSequence()

	_, err := competitor.NewFencer(seq, "A", "B",
		competitor.WithBirthdate(time.Now().AddDate(0, 0, 1)))
	require.ErrorIs(t, err, competitor.ErrBirthdateInFuture)

	_, err = competitor.NewFencer(seq, "A", "B",
		competitor.WithBirthdate(time.Now().AddDate(-(competitor.MaxAge+1), 0, 0)))
	require.ErrorIs(t, err, competitor.ErrBirthdateTooOld)

	_, err = competitor.NewFencer(seq, "A", "B", competitor.WithLicence(-1))
	require.ErrorIs(t, err, competitor.ErrBadLicence)

	_, err = competitor.NewFencer(seq, "A", "B", competitor.WithRank(-3))
	require.ErrorIs(t, err, competitor.ErrBadRank)

	_, err = competitor.NewFencer(nil, "A", "B")
	require.ErrorIs(t, err, competitor.ErrNilAllocator)
}

func TestFencer_ImplementsCompetitor(t *testing.T) {
	// A fencer carries the full scoring model through its embedded Player.
	seq := competitor.NewSequence()
	f, err := competitor.NewFencer(seq, "Leroy", "Anne")
	require.NoError(t, err)
	g, err := competitor.NewFencer(seq, "Moreau", "Paul")
	require.NoError(t, err)

	var c competitor.Competitor = f
	require.NoError(t, c.RecordMatch(g, competitor.Win, 15, 11))
	require.True(t, g.HasFaced(f.ID()))
	require.Equal(t, competitor.Record{Victories: 1}, f.Record())
}

func TestNewTeam(t *testing.T) {
	seq := competitor.NewSequence()
	a, err := competitor.NewFencer(seq, "Leroy", "Anne")
	require.NoError(t, err)
	b, err := competitor.NewFencer(seq, "Moreau", "Paul")
	require.NoError(t, err)

	team, err := competitor.NewTeam(seq, " les mousquetaires ", a, b)
	require.NoError(t, err)
	require.Equal(t, "LES MOUSQUETAIRES", team.Name())
	require.Equal(t, 3, team.ID())
	require.Len(t, team.Fencers(), 2)

	// The returned member slice is a copy.
	team.Fencers()[0] = nil
	require.NotNil(t, team.Fencers()[0])
}
