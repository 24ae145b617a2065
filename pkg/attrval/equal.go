// ABOUTME: Depth-bounded structural equality over value trees
// ABOUTME: Same variant tag plus recursively equal payloads

package attrval

import "fmt"

// Equal reports depth-bounded structural equality of two value trees.
// Two values are equal iff they carry the same variant and recursively
// equal payloads; Null equals only Null. Map key order is irrelevant,
// list order is not. maxDepth bounds recursion (zero or negative
// selects DefaultMaxDepth); trees nested beyond it fail with
// ErrDepthExceeded rather than overflowing the stack.
func Equal(a, b *Value, maxDepth int) (bool, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return equalValue(a, b, 1, maxDepth)
}

// Equal reports structural equality at DefaultMaxDepth. A tree nested
// beyond the bound compares unequal; use the Equal function for the
// error-returning form.
func (v *Value) Equal(o *Value) bool {
	eq, err := Equal(v, o, DefaultMaxDepth)
	return err == nil && eq
}

func equalValue(a, b *Value, depth, maxDepth int) (bool, error) {
	if depth > maxDepth {
		return false, fmt.Errorf("%w: nesting deeper than %d", ErrDepthExceeded, maxDepth)
	}
	if a == nil || b == nil {
		return a == b, nil
	}
	if a.kind != b.kind {
		return false, nil
	}

	switch a.kind {
	case KindString:
		return a.str == b.str, nil
	case KindInt64:
		return a.i64 == b.i64, nil
	case KindInt32:
		return a.i32 == b.i32, nil
	case KindBool:
		return a.b == b.b, nil
	case KindDouble:
		return a.f64 == b.f64, nil
	case KindNull:
		return true, nil
	case KindExternalRef:
		return a.extRef.Equal(b.extRef), nil
	case KindOntologyClass:
		return a.ont.Equal(b.ont), nil
	case KindExperiment:
		return a.exp.Equal(b.exp), nil
	case KindAnalysis:
		return a.ana.Equal(b.ana), nil
	case KindList:
		return equalList(a.list, b.list, depth, maxDepth)
	case KindMap:
		return equalAttrs(a.attrs, b.attrs, depth, maxDepth)
	default:
		return false, &UnknownVariantError{Tag: uint8(a.kind)}
	}
}

func equalList(a, b *List, depth, maxDepth int) (bool, error) {
	if a.Len() != b.Len() {
		return false, nil
	}
	for i := 0; i < a.Len(); i++ {
		eq, err := equalValue(a.items[i], b.items[i], depth+1, maxDepth)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func equalAttrs(a, b *Attributes, depth, maxDepth int) (bool, error) {
	if a.Len() != b.Len() {
		return false, nil
	}
	for _, k := range a.keys {
		other, ok := b.entries[k]
		if !ok {
			return false, nil
		}
		eq, err := equalList(a.entries[k], other, depth, maxDepth)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}
