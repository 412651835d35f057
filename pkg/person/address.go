package person

import (
	"github.com/walteh/go-selfkind/pkg/fluent"
)

var (
	_ fluent.Chainable[*PersonWithAddress]   = (*PersonWithAddress)(nil)
	_ fluent.Addressable[*PersonWithAddress] = (*PersonWithAddress)(nil)
)

// PersonWithAddress embeds Person and adopts the Addressable capability.
// Address is empty until SetAddress is called.
type PersonWithAddress struct {
	Person
	Address string
}

// NewWithAddress creates a PersonWithAddress with both base fields set and no
// address.
func NewWithAddress(name string, age int) *PersonWithAddress {
	return &PersonWithAddress{Person: *New(name, age)}
}

func (p *PersonWithAddress) SetAge(age int) *PersonWithAddress {
	p.Age = age
	return p
}

func (p *PersonWithAddress) SetName(name string) *PersonWithAddress {
	p.Name = name
	return p
}

// SetAddress mutates Address and returns the receiver, so a chain mixing
// inherited mutators and SetAddress keeps the concrete type throughout.
func (p *PersonWithAddress) SetAddress(addr string) *PersonWithAddress {
	p.Address = addr
	return p
}
