// ABOUTME: Ordered sequence of attribute values
// ABOUTME: Append-only during construction, insertion order is significant

package attrval

// List is an ordered, possibly empty sequence of values. Order is
// semantically significant. Build a list with Push, then treat it as
// immutable once attached to an Attributes map or a parent value.
type List struct {
	items []*Value
}

// NewList creates a list from the given values, in order. Nil values
// are skipped.
func NewList(values ...*Value) *List {
	l := &List{}
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Strings creates a list of string values, a convenience for the
// common multi-valued text attribute.
func Strings(values ...string) *List {
	l := &List{items: make([]*Value, 0, len(values))}
	for _, s := range values {
		l.items = append(l.items, String(s))
	}
	return l
}

// Push appends a value. Nil values are ignored; use Null() to store
// an explicit null.
func (l *List) Push(v *Value) {
	if v == nil {
		return
	}
	l.items = append(l.items, v)
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the element at index i.
func (l *List) At(i int) (*Value, error) {
	if l == nil || i < 0 || i >= len(l.items) {
		return nil, &IndexError{Index: i, Len: l.Len()}
	}
	return l.items[i], nil
}

// Each calls fn for every element in insertion order until fn returns
// false. Iteration is restartable: Each may be called any number of
// times.
func (l *List) Each(fn func(i int, v *Value) bool) {
	if l == nil {
		return
	}
	for i, v := range l.items {
		if !fn(i, v) {
			return
		}
	}
}
