package competitor

import (
	"fmt"
	"time"
)

// MaxAge bounds how far back a fencer's birthdate may lie, in years.
const MaxAge = 128

// Gender is the competition category of a fencer, following the French
// federation vocabulary of the domain.
type Gender uint8

const (
	// GenderUnspecified is the zero value; no category declared.
	GenderUnspecified Gender = iota

	// Homme is the male category.
	Homme

	// Femme is the female category.
	Femme

	// Autre covers other gender identities.
	Autre
)

// String returns the title-cased French category name.
func (g Gender) String() string {
	switch g {
	case Homme:
		return "Homme"
	case Femme:
		return "Femme"
	case Autre:
		return "Autre"
	default:
		return "Unspecified"
	}
}

// Fencer is an individual tournament entrant: a Player scoring record plus
// personal identity. Identity fields are normalized and validated at
// construction and frozen afterwards.
type Fencer struct {
	Player

	lastname  string
	firstname string
	birthdate time.Time // zero when not declared
	gender    Gender
	club      string
	licence   int // -1 when not declared
	rank      int
}

// FencerOption configures optional Fencer identity at construction.
type FencerOption func(*Fencer) error

// WithBirthdate declares the fencer's date of birth. NewFencer rejects dates
// in the future or more than MaxAge years back.
func WithBirthdate(d time.Time) FencerOption {
	return func(f *Fencer) error {
		now := time.Now()
		if d.After(now) {
			return fmt.Errorf("%w: %s", ErrBirthdateInFuture, d.Format(time.DateOnly))
		}
		if d.Before(now.AddDate(-MaxAge, 0, 0)) {
			return fmt.Errorf("%w: %s", ErrBirthdateTooOld, d.Format(time.DateOnly))
		}
		f.birthdate = d

		return nil
	}
}

// WithGender declares the fencer's competition category.
func WithGender(g Gender) FencerOption {
	return func(f *Fencer) error {
		f.gender = g

		return nil
	}
}

// WithClub declares the affiliated club; stored upper-cased.
func WithClub(club string) FencerOption {
	return func(f *Fencer) error {
		f.club = normalizeUpper(club)

		return nil
	}
}

// WithLicence declares the federation licence number; must be non-negative.
func WithLicence(n int) FencerOption {
	return func(f *Fencer) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrBadLicence, n)
		}
		f.licence = n

		return nil
	}
}

// WithRank declares the initial seeding rank; must be non-negative.
func WithRank(r int) FencerOption {
	return func(f *Fencer) error {
		if r < 0 {
			return fmt.Errorf("%w: %d", ErrBadRank, r)
		}
		f.rank = r

		return nil
	}
}

// NewFencer returns a Fencer with an id drawn from alloc, the family name
// upper-cased, the given name title-cased, and every option validated.
// Construction fails rather than returning a half-valid fencer.
func NewFencer(alloc IDAllocator, lastname, firstname string, opts ...FencerOption) (*Fencer, error) {
	base, err := NewPlayer(alloc)
	if err != nil {
		return nil, err
	}

	f := &Fencer{
		Player:    *base,
		lastname:  normalizeUpper(lastname),
		firstname: normalizeTitle(firstname),
		licence:   -1,
	}
	for _, opt := range opts {
		if err = opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Lastname returns the upper-cased family name.
func (f *Fencer) Lastname() string { return f.lastname }

// Firstname returns the title-cased given name.
func (f *Fencer) Firstname() string { return f.firstname }

// Birthdate returns the declared date of birth and whether one was declared.
func (f *Fencer) Birthdate() (time.Time, bool) {
	return f.birthdate, !f.birthdate.IsZero()
}

// Gender returns the declared competition category.
func (f *Fencer) Gender() Gender { return f.gender }

// Club returns the upper-cased affiliated club, empty when not declared.
func (f *Fencer) Club() string { return f.club }

// Licence returns the licence number and whether one was declared.
func (f *Fencer) Licence() (int, bool) {
	return f.licence, f.licence >= 0
}

// Rank returns the initial seeding rank.
func (f *Fencer) Rank() int { return f.rank }

// String renders the fencer as "LASTNAME Firstname".
func (f *Fencer) String() string {
	return fmt.Sprintf("%s %s", f.lastname, f.firstname)
}
