package competitor

// Team is a squad of fencers competing as one entrant. The team carries its
// own Player scoring record; member statistics are not aggregated.
type Team struct {
	Player

	name    string
	fencers []*Fencer
}

// NewTeam returns a Team with an id drawn from alloc, the name upper-cased,
// and the given members in order.
func NewTeam(alloc IDAllocator, name string, fencers ...*Fencer) (*Team, error) {
	base, err := NewPlayer(alloc)
	if err != nil {
		return nil, err
	}

	return &Team{
		Player:  *base,
		name:    normalizeUpper(name),
		fencers: append([]*Fencer(nil), fencers...),
	}, nil
}

// Name returns the upper-cased team name.
func (t *Team) Name() string { return t.name }

// Fencers returns the members in registration order. The slice is a copy.
func (t *Team) Fencers() []*Fencer {
	return append([]*Fencer(nil), t.fencers...)
}

// String returns the team name.
func (t *Team) String() string { return t.name }
