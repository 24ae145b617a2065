// ABOUTME: Tests for the CBOR bridge
// ABOUTME: Roundtrips through plain Go values and deterministic CBOR

package interop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buske/phenoval/pkg/attrval"
	"github.com/buske/phenoval/pkg/schema"
)

func TestMarshalRoundtrip(t *testing.T) {
	ont, err := attrval.Ontology(&schema.OntologyClass{ID: "HP:0001166", Label: "Arachnodactyly"})
	require.NoError(t, err)

	attrs := attrval.NewAttributes()
	attrs.SetStrings("color", "red", "blue")
	attrs.Set("terms", attrval.NewList(ont, attrval.Null()))
	attrs.Set("scores", attrval.NewList(attrval.Int64(10), attrval.Double(0.5), attrval.Bool(true)))
	in := attrval.MapOf(attrs)

	data, err := Marshal(in)
	require.NoError(t, err)

	out, err := Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(out), "CBOR roundtrip changed the tree")
}

func TestMarshalDeterministic(t *testing.T) {
	attrs := attrval.NewAttributes()
	attrs.SetStrings("zebra", "z")
	attrs.SetStrings("apple", "a")
	v := attrval.MapOf(attrs)

	first, err := Marshal(v)
	require.NoError(t, err)
	second, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same tree must produce identical bytes")
}

func TestInt32WidensToInt64(t *testing.T) {
	// Documented lossiness: the bridge is not kind-preserving for Int32.
	data, err := Marshal(attrval.Int32(7))
	require.NoError(t, err)

	out, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, attrval.KindInt64, out.Kind())
	i, err := out.AsInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(7), i)
}

func TestStructuredLeafRoundtrip(t *testing.T) {
	exp, err := attrval.ExperimentOf(&schema.Experiment{
		ID:       "exp-1",
		Strategy: "WGS",
		Created:  time.Date(2023, 6, 1, 12, 0, 0, 500_000_000, time.UTC),
	})
	require.NoError(t, err)
	ana, err := attrval.AnalysisOf(&schema.Analysis{
		ID:       "an-1",
		Type:     "variant calling",
		Software: []string{"bwa-mem2", "gatk"},
	})
	require.NoError(t, err)
	ref, err := attrval.ExternalRef(&schema.ExternalReference{ID: "PMID:30962759"})
	require.NoError(t, err)

	for _, in := range []*attrval.Value{exp, ana, ref} {
		data, err := Marshal(in)
		require.NoError(t, err)
		out, err := Unmarshal(data)
		require.NoError(t, err)
		assert.True(t, in.Equal(out), "kind %s changed in roundtrip", in.Kind())
	}
}

func TestNullDistinctFromAbsent(t *testing.T) {
	withNull := attrval.NewAttributes()
	withNull.Set("x", attrval.NewList(attrval.Null()))

	data, err := Marshal(attrval.MapOf(withNull))
	require.NoError(t, err)
	out, err := Unmarshal(data)
	require.NoError(t, err)

	m, err := out.AsMap()
	require.NoError(t, err)
	list, ok := m.Get("x")
	require.True(t, ok, "x must survive the roundtrip")
	require.Equal(t, 1, list.Len())
	elem, err := list.At(0)
	require.NoError(t, err)
	assert.True(t, elem.IsNull())
}

func TestFromAnyRejectsUnsupported(t *testing.T) {
	_, err := FromAny(struct{}{}, 0)
	require.ErrorIs(t, err, attrval.ErrMalformed)
}

func TestFromAnyUnknownStructuredKind(t *testing.T) {
	_, err := FromAny(map[string]any{"@kind": "mystery"}, 0)
	require.ErrorIs(t, err, attrval.ErrUnknownVariant)
}

func TestToAnyBoundsDepth(t *testing.T) {
	l := attrval.NewList()
	v := attrval.ListOf(l)
	l.Push(v) // cycle

	_, err := ToAny(v, 8)
	require.ErrorIs(t, err, attrval.ErrDepthExceeded)
}

func TestFromAnyWrapsScalarsInLists(t *testing.T) {
	v, err := FromAny(map[string]any{"note": "single"}, 0)
	require.NoError(t, err)

	m, err := v.AsMap()
	require.NoError(t, err)
	list, ok := m.Get("note")
	require.True(t, ok)
	require.Equal(t, 1, list.Len())
	elem, _ := list.At(0)
	s, err := elem.AsString()
	require.NoError(t, err)
	assert.Equal(t, "single", s)
}
