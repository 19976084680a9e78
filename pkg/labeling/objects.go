package labeling

// Object is an operand of an equality or relation atom: either a
// concrete Label or a Variable bound by a quantifier or filter.
type Object interface {
	String() string
	isObject()
}

// Label is an atomic object class, compared by name.
type Label string

var _ Object = Label("")

func (l Label) String() string {
	return string(l)
}

func (Label) isObject() {}

// Variable is a name bound by a quantifier or by the outermost filter.
type Variable string

var _ Object = Variable("")

func (v Variable) String() string {
	return string(v)
}

func (Variable) isObject() {}
