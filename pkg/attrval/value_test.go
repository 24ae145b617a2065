// ABOUTME: Tests for value construction and payload access
// ABOUTME: Verifies exactly-one-variant behavior and mismatch errors

package attrval

import (
	"errors"
	"testing"

	"github.com/buske/phenoval/pkg/schema"
)

func TestConstructorKinds(t *testing.T) {
	ont, err := Ontology(&schema.OntologyClass{ID: "HP:0001166", Label: "Arachnodactyly"})
	if err != nil {
		t.Fatalf("Ontology failed: %v", err)
	}

	cases := []struct {
		name string
		v    *Value
		want Kind
	}{
		{"string", String("hello"), KindString},
		{"int64", Int64(-42), KindInt64},
		{"int32", Int32(7), KindInt32},
		{"bool", Bool(true), KindBool},
		{"double", Double(3.5), KindDouble},
		{"null", Null(), KindNull},
		{"ontology", ont, KindOntologyClass},
		{"list", ListOf(NewList()), KindList},
		{"map", MapOf(NewAttributes()), KindMap},
	}

	for _, tc := range cases {
		if got := tc.v.Kind(); got != tc.want {
			t.Errorf("%s: Kind() = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestAccessorRoundtrip(t *testing.T) {
	if s, err := String("abc").AsString(); err != nil || s != "abc" {
		t.Errorf("AsString = %q, %v", s, err)
	}
	if i, err := Int64(-9000000000).AsInt64(); err != nil || i != -9000000000 {
		t.Errorf("AsInt64 = %d, %v", i, err)
	}
	if i, err := Int32(-12).AsInt32(); err != nil || i != -12 {
		t.Errorf("AsInt32 = %d, %v", i, err)
	}
	if b, err := Bool(true).AsBool(); err != nil || !b {
		t.Errorf("AsBool = %t, %v", b, err)
	}
	if f, err := Double(2.25).AsDouble(); err != nil || f != 2.25 {
		t.Errorf("AsDouble = %g, %v", f, err)
	}
}

func TestAccessorMismatch(t *testing.T) {
	v := String("not a number")

	_, err := v.AsInt64()
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}

	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected *TypeMismatchError, got %T", err)
	}
	if tm.Expected != KindInt64 || tm.Actual != KindString {
		t.Errorf("mismatch payload = expected %s actual %s", tm.Expected, tm.Actual)
	}
}

func TestNilValueAccess(t *testing.T) {
	var v *Value
	if v.Kind() != KindInvalid {
		t.Errorf("nil Kind() = %s, want invalid", v.Kind())
	}
	if _, err := v.AsString(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch on nil value, got %v", err)
	}
}

func TestStructuredRequiresPayload(t *testing.T) {
	if _, err := ExternalRef(nil); !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("ExternalRef(nil) = %v, want ErrMissingRequiredField", err)
	}
	if _, err := Ontology(nil); !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("Ontology(nil) = %v, want ErrMissingRequiredField", err)
	}
	if _, err := ExperimentOf(nil); !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("ExperimentOf(nil) = %v, want ErrMissingRequiredField", err)
	}
	if _, err := AnalysisOf(nil); !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("AnalysisOf(nil) = %v, want ErrMissingRequiredField", err)
	}
}

func TestNullIsDataNotError(t *testing.T) {
	v := Null()
	if !v.IsNull() {
		t.Fatal("Null() should report IsNull")
	}
	if v.Kind() != KindNull {
		t.Fatalf("Null Kind() = %s", v.Kind())
	}
	if String("").IsNull() {
		t.Error("empty string is not null")
	}
}
