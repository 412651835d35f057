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

type Derived struct {
	Base
}

func (d *Derived) SetAge(age int) *Derived {
	d.Age = age
	return d
}

func (d *Derived) SetName(name string) *Derived {
	d.Name = name
	return d
}

func (d *Derived) Extra() string {
	return "derived"
}
