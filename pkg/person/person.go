// Package person is the reference hierarchy for the fluent self-return
// convention: a base type with chainable mutators, an embedder that keeps
// the chain covariant by shadowing them, and a capability adopter.
package person

import (
	"fmt"

	"github.com/google/uuid"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/walteh/go-selfkind/pkg/fluent"
)

var _ fluent.Chainable[*Person] = (*Person)(nil)

// Person is the base entity. Every instance carries a unique id assigned at
// construction, used to observe that mutators alias the receiver rather than
// copy it.
type Person struct {
	id   uuid.UUID
	Name string
	Age  int
}

// New creates a Person with both fields set.
func New(name string, age int) *Person {
	return &Person{
		id:   uuid.New(),
		Name: name,
		Age:  age,
	}
}

// SetAgeAsPerson mutates Age and returns the receiver pinned to *Person.
// When promoted into an embedding type the return type stays *Person, so a
// chain through this method loses the concrete type and needs an explicit
// re-reference to reach embedder-only methods.
func (p *Person) SetAgeAsPerson(age int) *Person {
	p.Age = age
	return p
}

// SetAge mutates Age and returns the receiver. Embedders must shadow this
// method with their own return type to keep chains covariant; the selfkind
// checker enforces that.
func (p *Person) SetAge(age int) *Person {
	p.Age = age
	return p
}

// SetName mutates Name and returns the receiver. Same shadowing contract as
// SetAge.
func (p *Person) SetName(name string) *Person {
	p.Name = name
	return p
}

// ID returns the identity assigned at construction. It never changes across
// mutator calls.
func (p *Person) ID() uuid.UUID {
	return p.id
}

func (p *Person) String() string {
	return fmt.Sprintf("%s (age %d)", p.Name, p.Age)
}

// Validate reports every field problem at once rather than stopping at the
// first one. The mutators themselves do not validate.
func (p *Person) Validate() error {
	var err error
	if p.Name == "" {
		err = multierr.Append(err, errors.New("name must not be empty"))
	}
	if p.Age < 0 {
		err = multierr.Append(err, errors.Errorf("age must not be negative, got %d", p.Age))
	}
	if p.Age > 150 {
		err = multierr.Append(err, errors.Errorf("age %d is out of range", p.Age))
	}
	return err
}
