// ABOUTME: Depth-bounded deep copy of value trees
// ABOUTME: Structured payloads are copied, never shared

package attrval

import "fmt"

// Clone returns a deep copy of v sharing no state with the original.
// maxDepth bounds recursion (zero or negative selects
// DefaultMaxDepth); trees nested beyond it fail with ErrDepthExceeded.
func Clone(v *Value, maxDepth int) (*Value, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return cloneValue(v, 1, maxDepth)
}

// Clone returns a deep copy at DefaultMaxDepth.
func (v *Value) Clone() (*Value, error) {
	return Clone(v, DefaultMaxDepth)
}

func cloneValue(v *Value, depth, maxDepth int) (*Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrDepthExceeded, maxDepth)
	}
	if v == nil {
		return nil, nil
	}

	switch v.kind {
	case KindString, KindInt64, KindInt32, KindBool, KindDouble, KindNull:
		out := *v
		return &out, nil
	case KindExternalRef:
		r := *v.extRef
		return &Value{kind: KindExternalRef, extRef: &r}, nil
	case KindOntologyClass:
		c := *v.ont
		return &Value{kind: KindOntologyClass, ont: &c}, nil
	case KindExperiment:
		e := *v.exp
		return &Value{kind: KindExperiment, exp: &e}, nil
	case KindAnalysis:
		a := *v.ana
		if a.Software != nil {
			a.Software = append([]string(nil), a.Software...)
		}
		return &Value{kind: KindAnalysis, ana: &a}, nil
	case KindList:
		list, err := cloneList(v.list, depth, maxDepth)
		if err != nil {
			return nil, err
		}
		return &Value{kind: KindList, list: list}, nil
	case KindMap:
		attrs := NewAttributes()
		var cloneErr error
		v.attrs.Each(func(key string, list *List) bool {
			var cp *List
			cp, cloneErr = cloneList(list, depth, maxDepth)
			if cloneErr != nil {
				return false
			}
			attrs.Set(key, cp)
			return true
		})
		if cloneErr != nil {
			return nil, cloneErr
		}
		return &Value{kind: KindMap, attrs: attrs}, nil
	default:
		return nil, &UnknownVariantError{Tag: uint8(v.kind)}
	}
}

func cloneList(l *List, depth, maxDepth int) (*List, error) {
	out := &List{items: make([]*Value, 0, l.Len())}
	for _, elem := range l.items {
		cp, err := cloneValue(elem, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		out.items = append(out.items, cp)
	}
	return out, nil
}
