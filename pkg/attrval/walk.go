// ABOUTME: Depth-bounded pre-order traversal over value trees
// ABOUTME: Guards equality, copy and encode against runaway recursion

package attrval

import "fmt"

// VisitFunc receives each value in pre-order. Depth starts at 1 for
// the root. Returning an error aborts the walk and is propagated
// unchanged to the Walk caller.
type VisitFunc func(depth int, v *Value) error

// Walk traverses v in depth-first pre-order, calling visit for every
// node. maxDepth bounds nesting; zero or negative selects
// DefaultMaxDepth. Builder-constructed trees are not depth-checked at
// construction time, so every deep traversal enforces the bound
// itself and fails with ErrDepthExceeded instead of overflowing the
// stack on pathological (or accidentally cyclic) input.
func Walk(v *Value, maxDepth int, visit VisitFunc) error {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return walkValue(v, 1, maxDepth, visit)
}

func walkValue(v *Value, depth, maxDepth int, visit VisitFunc) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrDepthExceeded, maxDepth)
	}
	if err := visit(depth, v); err != nil {
		return err
	}
	switch v.Kind() {
	case KindList:
		var walkErr error
		v.list.Each(func(_ int, elem *Value) bool {
			walkErr = walkValue(elem, depth+1, maxDepth, visit)
			return walkErr == nil
		})
		return walkErr
	case KindMap:
		var walkErr error
		v.attrs.Each(func(_ string, list *List) bool {
			list.Each(func(_ int, elem *Value) bool {
				walkErr = walkValue(elem, depth+1, maxDepth, visit)
				return walkErr == nil
			})
			return walkErr == nil
		})
		return walkErr
	default:
		return nil
	}
}
