package labeling

// Binding is the concrete object a Variable stands for: a box of an
// Example together with that box's base label.
type Binding struct {
	Box   BoundingBox
	Label Label
}

// Env binds Variables to Bindings. It is a persistent association
// list: Extend returns a new Env and never modifies the receiver, so
// siblings extending the same Env never observe each other. The nil
// *Env is the empty environment.
type Env struct {
	parent  *Env
	v       Variable
	binding Binding
}

// Extend returns an environment in which v is bound to b, shadowing
// any earlier binding of v.
func (e *Env) Extend(v Variable, b Binding) *Env {
	return &Env{parent: e, v: v, binding: b}
}

// Lookup returns the innermost binding of v.
func (e *Env) Lookup(v Variable) (Binding, bool) {
	for n := e; n != nil; n = n.parent {
		if n.v == v {
			return n.binding, true
		}
	}
	return Binding{}, false
}

// Len returns the number of bindings, shadowed ones included.
func (e *Env) Len() int {
	n := 0
	for ; e != nil; e = e.parent {
		n++
	}
	return n
}

// Bind returns the environment binding v to box and its base label in
// example, and whether box belongs to example.
func (e *Env) Bind(v Variable, box BoundingBox, example *Example) (*Env, bool) {
	base, ok := example.Base(box)
	if !ok {
		return e, false
	}
	return e.Extend(v, Binding{Box: box, Label: base}), true
}
