package people

type Base struct {
	Name string
	Age  int
}

// SetAgeAsBase is intentionally pinned to *Base.
func (b *Base) SetAgeAsBase(age int) *Base {
	b.Age = age
	return b
}

func (b *Base) SetAge(age int) *Base {
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
