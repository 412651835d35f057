package person

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/walteh/go-selfkind/pkg/fluent"
)

var _ fluent.Chainable[*AdvancedPerson] = (*AdvancedPerson)(nil)

// AdvancedPerson embeds Person and shadows the covariant mutators so chains
// starting from an *AdvancedPerson stay typed as *AdvancedPerson. The pinned
// SetAgeAsPerson is inherited as-is: calling it on an AdvancedPerson hands
// back a *Person, and Describe is unreachable from that result without going
// through the original reference.
type AdvancedPerson struct {
	Person
}

// NewAdvanced creates an AdvancedPerson with both base fields set.
func NewAdvanced(name string, age int) *AdvancedPerson {
	return &AdvancedPerson{Person: *New(name, age)}
}

func (p *AdvancedPerson) SetAge(age int) *AdvancedPerson {
	p.Age = age
	return p
}

func (p *AdvancedPerson) SetName(name string) *AdvancedPerson {
	p.Name = name
	return p
}

// Describe logs the current state through the context logger. It exists only
// on AdvancedPerson, which is what makes the return type of a chain
// observable at compile time.
func (p *AdvancedPerson) Describe(ctx context.Context) {
	zerolog.Ctx(ctx).Info().
		Str("name", p.Name).
		Int("age", p.Age).
		Str("id", p.id.String()).
		Msg("advanced person")
}
