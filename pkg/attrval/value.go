// ABOUTME: Tagged union value type for attribute payloads
// ABOUTME: Exactly one variant is populated per value, enforced by construction

package attrval

import (
	"fmt"

	"github.com/buske/phenoval/pkg/schema"
)

// Value is a discriminated union over scalar payloads, structured
// payloads, nested lists and nested maps. A Value is immutable after
// construction; updates rebuild the affected subtree. The zero Value
// is invalid — use the constructors.
type Value struct {
	kind Kind

	// Scalar payloads, only one valid per kind
	str string
	i64 int64
	i32 int32
	b   bool
	f64 float64

	// Structured payloads, stored opaquely
	extRef *schema.ExternalReference
	ont    *schema.OntologyClass
	exp    *schema.Experiment
	ana    *schema.Analysis

	// Recursive payloads
	list  *List
	attrs *Attributes
}

// String creates a string value.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// Int64 creates a 64-bit integer value.
func Int64(i int64) *Value {
	return &Value{kind: KindInt64, i64: i}
}

// Int32 creates a 32-bit integer value.
func Int32(i int32) *Value {
	return &Value{kind: KindInt32, i32: i}
}

// Bool creates a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Double creates a 64-bit float value.
func Double(f float64) *Value {
	return &Value{kind: KindDouble, f64: f}
}

// Null creates the explicit null marker. Null is data: a list holding
// one Null is not the same as an empty list or a missing key.
func Null() *Value {
	return &Value{kind: KindNull}
}

// ExternalRef creates a value wrapping an external reference record.
func ExternalRef(r *schema.ExternalReference) (*Value, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: external reference", ErrMissingRequiredField)
	}
	return &Value{kind: KindExternalRef, extRef: r}, nil
}

// Ontology creates a value wrapping an ontology class record.
func Ontology(c *schema.OntologyClass) (*Value, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: ontology class", ErrMissingRequiredField)
	}
	return &Value{kind: KindOntologyClass, ont: c}, nil
}

// ExperimentOf creates a value wrapping an experiment record.
func ExperimentOf(e *schema.Experiment) (*Value, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: experiment", ErrMissingRequiredField)
	}
	return &Value{kind: KindExperiment, exp: e}, nil
}

// AnalysisOf creates a value wrapping an analysis record.
func AnalysisOf(a *schema.Analysis) (*Value, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: analysis", ErrMissingRequiredField)
	}
	return &Value{kind: KindAnalysis, ana: a}, nil
}

// ListOf creates a value holding a nested list. A nil list is treated
// as empty.
func ListOf(l *List) *Value {
	if l == nil {
		l = NewList()
	}
	return &Value{kind: KindList, list: l}
}

// MapOf creates a value holding nested attributes. A nil map is
// treated as empty.
func MapOf(a *Attributes) *Value {
	if a == nil {
		a = NewAttributes()
	}
	return &Value{kind: KindMap, attrs: a}
}

// Kind reports which variant is populated.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// IsNull reports whether v is the explicit null marker.
func (v *Value) IsNull() bool {
	return v != nil && v.kind == KindNull
}

func (v *Value) mismatch(want Kind) error {
	return &TypeMismatchError{Expected: want, Actual: v.Kind()}
}

// AsString returns the string payload.
func (v *Value) AsString() (string, error) {
	if v == nil || v.kind != KindString {
		return "", v.mismatch(KindString)
	}
	return v.str, nil
}

// AsInt64 returns the 64-bit integer payload.
func (v *Value) AsInt64() (int64, error) {
	if v == nil || v.kind != KindInt64 {
		return 0, v.mismatch(KindInt64)
	}
	return v.i64, nil
}

// AsInt32 returns the 32-bit integer payload.
func (v *Value) AsInt32() (int32, error) {
	if v == nil || v.kind != KindInt32 {
		return 0, v.mismatch(KindInt32)
	}
	return v.i32, nil
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, error) {
	if v == nil || v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}
	return v.b, nil
}

// AsDouble returns the float payload.
func (v *Value) AsDouble() (float64, error) {
	if v == nil || v.kind != KindDouble {
		return 0, v.mismatch(KindDouble)
	}
	return v.f64, nil
}

// AsExternalRef returns the external reference payload.
func (v *Value) AsExternalRef() (*schema.ExternalReference, error) {
	if v == nil || v.kind != KindExternalRef {
		return nil, v.mismatch(KindExternalRef)
	}
	return v.extRef, nil
}

// AsOntology returns the ontology class payload.
func (v *Value) AsOntology() (*schema.OntologyClass, error) {
	if v == nil || v.kind != KindOntologyClass {
		return nil, v.mismatch(KindOntologyClass)
	}
	return v.ont, nil
}

// AsExperiment returns the experiment payload.
func (v *Value) AsExperiment() (*schema.Experiment, error) {
	if v == nil || v.kind != KindExperiment {
		return nil, v.mismatch(KindExperiment)
	}
	return v.exp, nil
}

// AsAnalysis returns the analysis payload.
func (v *Value) AsAnalysis() (*schema.Analysis, error) {
	if v == nil || v.kind != KindAnalysis {
		return nil, v.mismatch(KindAnalysis)
	}
	return v.ana, nil
}

// AsList returns the nested list payload.
func (v *Value) AsList() (*List, error) {
	if v == nil || v.kind != KindList {
		return nil, v.mismatch(KindList)
	}
	return v.list, nil
}

// AsMap returns the nested attributes payload.
func (v *Value) AsMap() (*Attributes, error) {
	if v == nil || v.kind != KindMap {
		return nil, v.mismatch(KindMap)
	}
	return v.attrs, nil
}

// GoString returns a short debug representation without descending
// into nested collections.
func (v *Value) GoString() string {
	switch v.Kind() {
	case KindString:
		return fmt.Sprintf("attrval.String(%q)", v.str)
	case KindInt64:
		return fmt.Sprintf("attrval.Int64(%d)", v.i64)
	case KindInt32:
		return fmt.Sprintf("attrval.Int32(%d)", v.i32)
	case KindBool:
		return fmt.Sprintf("attrval.Bool(%t)", v.b)
	case KindDouble:
		return fmt.Sprintf("attrval.Double(%g)", v.f64)
	case KindNull:
		return "attrval.Null()"
	case KindList:
		return fmt.Sprintf("attrval.ListOf(len=%d)", v.list.Len())
	case KindMap:
		return fmt.Sprintf("attrval.MapOf(len=%d)", v.attrs.Len())
	default:
		return fmt.Sprintf("attrval.Value(%s)", v.Kind())
	}
}
