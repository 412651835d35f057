package people

type Base struct {
	Name string
	Age  int
}

func (b *Base) SetAge(age int) *Base {
	b.Age = age
	return b
}

func (b *Base) SetName(name string) *Base {
	b.Name = name
	return b
}

// Derived forgets to shadow both mutators, so any chain through it comes
// back as *Base.
type Derived struct {
	Base
}

func (d *Derived) Extra() string {
	return "derived"
}
