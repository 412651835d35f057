package main

type Base struct {
	Age int
}

func (b *Base) SetAgeAsBase(age int) *Base {
	b.Age = age
	return b
}

type Derived struct {
	Base
}

func (d *Derived) SetAge(age int) *Derived {
	d.Age = age
	return d
}

func (d *Derived) Extra() string {
	return "derived"
}

func main() {
	d := &Derived{}
	// The pinned mutator hands back *Base, which has no Extra. This line
	// does not type-check.
	_ = d.SetAgeAsBase(1).Extra()
}
