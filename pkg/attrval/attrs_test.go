// ABOUTME: Tests for the attribute map and value lists
// ABOUTME: Covers last-write-wins, null-vs-absent and iteration order

package attrval

import (
	"errors"
	"testing"
)

func TestListOrderAndAccess(t *testing.T) {
	l := Strings("red", "blue")

	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}

	first, err := l.At(0)
	if err != nil {
		t.Fatalf("At(0) failed: %v", err)
	}
	if s, _ := first.AsString(); s != "red" {
		t.Errorf("At(0) = %q, want red", s)
	}

	_, err = l.At(2)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("At(2) = %v, want ErrIndexOutOfRange", err)
	}
	var ie *IndexError
	if !errors.As(err, &ie) || ie.Index != 2 || ie.Len != 2 {
		t.Errorf("index error payload = %+v", ie)
	}

	_, err = l.At(-1)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At(-1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestListEachRestartable(t *testing.T) {
	l := Strings("a", "b", "c")

	for round := 0; round < 2; round++ {
		var got []string
		l.Each(func(_ int, v *Value) bool {
			s, _ := v.AsString()
			got = append(got, s)
			return true
		})
		if len(got) != 3 || got[0] != "a" || got[2] != "c" {
			t.Fatalf("round %d: got %v", round, got)
		}
	}

	// Early stop
	count := 0
	l.Each(func(_ int, v *Value) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("early stop visited %d elements", count)
	}
}

func TestMultiValuedAttribute(t *testing.T) {
	a := NewAttributes()
	a.SetStrings("color", "red", "blue")

	list, ok := a.Get("color")
	if !ok {
		t.Fatal("color should be present")
	}
	if list.Len() != 2 {
		t.Fatalf("color has %d values, want 2", list.Len())
	}
	v, _ := list.At(1)
	if s, _ := v.AsString(); s != "blue" {
		t.Errorf("color[1] = %q, want blue", s)
	}

	// Last write wins: a second Set replaces, never merges
	a.SetStrings("color", "green")
	list, _ = a.Get("color")
	if list.Len() != 1 {
		t.Fatalf("after overwrite color has %d values, want 1", list.Len())
	}
	v, _ = list.At(0)
	if s, _ := v.AsString(); s != "green" {
		t.Errorf("after overwrite color[0] = %q, want green", s)
	}
}

func TestNullVsAbsent(t *testing.T) {
	withNull := NewAttributes()
	withNull.Set("x", NewList(Null()))

	absent := NewAttributes()

	if MapOf(withNull).Equal(MapOf(absent)) {
		t.Error("[null] under a key must not equal an absent key")
	}

	list, ok := withNull.Get("x")
	if !ok || list.Len() != 1 {
		t.Fatal("x should hold exactly one element")
	}
	v, _ := list.At(0)
	if !v.IsNull() {
		t.Error("x[0] should be the null marker")
	}

	if _, ok := absent.Get("x"); ok {
		t.Error("absent map should not report x present")
	}

	// Empty list is a third distinct state
	empty := NewAttributes()
	empty.Set("x", NewList())
	if MapOf(withNull).Equal(MapOf(empty)) {
		t.Error("[null] must not equal []")
	}
	if MapOf(empty).Equal(MapOf(absent)) {
		t.Error("[] must not equal absence")
	}
}

func TestAttributesDeleteAndKeys(t *testing.T) {
	a := NewAttributes()
	a.SetStrings("first", "1")
	a.SetStrings("second", "2")
	a.SetStrings("third", "3")

	keys := a.Keys()
	if len(keys) != 3 || keys[0] != "first" || keys[2] != "third" {
		t.Fatalf("Keys = %v", keys)
	}

	a.Delete("second")
	if a.Len() != 2 {
		t.Fatalf("Len after delete = %d", a.Len())
	}
	if _, ok := a.Get("second"); ok {
		t.Error("second should be gone")
	}

	keys = a.Keys()
	if len(keys) != 2 || keys[0] != "first" || keys[1] != "third" {
		t.Errorf("Keys after delete = %v", keys)
	}

	// Deleting an absent key is a no-op
	a.Delete("second")
	if a.Len() != 2 {
		t.Errorf("Len after double delete = %d", a.Len())
	}
}

func TestAttributesEqualityIgnoresKeyOrder(t *testing.T) {
	a := NewAttributes()
	a.SetStrings("x", "1")
	a.SetStrings("y", "2")

	b := NewAttributes()
	b.SetStrings("y", "2")
	b.SetStrings("x", "1")

	if !MapOf(a).Equal(MapOf(b)) {
		t.Error("key insertion order must not affect equality")
	}
}
