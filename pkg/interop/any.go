// ABOUTME: Conversion between value trees and plain Go values
// ABOUTME: Structured payloads carry an @kind discriminator map

package interop

import (
	"fmt"
	"math"
	"time"

	"github.com/buske/phenoval/pkg/attrval"
	"github.com/buske/phenoval/pkg/schema"
)

// kindKey discriminates structured payload maps from attribute maps.
const kindKey = "@kind"

const (
	kindExternalRef   = "external_reference"
	kindOntologyClass = "ontology_class"
	kindExperiment    = "experiment"
	kindAnalysis      = "analysis"
)

// ToAny converts v into plain Go values (nil, bool, int64, float64,
// string, []any, map[string]any). maxDepth bounds recursion; zero or
// negative selects attrval.DefaultMaxDepth.
func ToAny(v *attrval.Value, maxDepth int) (any, error) {
	if maxDepth <= 0 {
		maxDepth = attrval.DefaultMaxDepth
	}
	return toAny(v, 1, maxDepth)
}

func toAny(v *attrval.Value, depth, maxDepth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", attrval.ErrDepthExceeded, maxDepth)
	}

	switch v.Kind() {
	case attrval.KindString:
		s, _ := v.AsString()
		return s, nil
	case attrval.KindInt64:
		i, _ := v.AsInt64()
		return i, nil
	case attrval.KindInt32:
		i, _ := v.AsInt32()
		return int64(i), nil
	case attrval.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case attrval.KindDouble:
		f, _ := v.AsDouble()
		return f, nil
	case attrval.KindNull:
		return nil, nil

	case attrval.KindExternalRef:
		r, _ := v.AsExternalRef()
		return map[string]any{
			kindKey:       kindExternalRef,
			"id":          r.ID,
			"description": r.Description,
		}, nil

	case attrval.KindOntologyClass:
		c, _ := v.AsOntology()
		return map[string]any{
			kindKey: kindOntologyClass,
			"id":    c.ID,
			"label": c.Label,
		}, nil

	case attrval.KindExperiment:
		e, _ := v.AsExperiment()
		return map[string]any{
			kindKey:             kindExperiment,
			"id":                e.ID,
			"name":              e.Name,
			"description":       e.Description,
			"created":           formatTime(e.Created),
			"run_time":          e.RunTime,
			"molecule":          e.Molecule,
			"strategy":          e.Strategy,
			"selection":         e.Selection,
			"library":           e.Library,
			"instrument_model":  e.InstrumentModel,
			"sequencing_center": e.SequencingCenter,
		}, nil

	case attrval.KindAnalysis:
		a, _ := v.AsAnalysis()
		software := make([]any, len(a.Software))
		for i, s := range a.Software {
			software[i] = s
		}
		return map[string]any{
			kindKey:       kindAnalysis,
			"id":          a.ID,
			"name":        a.Name,
			"description": a.Description,
			"created":     formatTime(a.Created),
			"updated":     formatTime(a.Updated),
			"type":        a.Type,
			"software":    software,
		}, nil

	case attrval.KindList:
		list, _ := v.AsList()
		out := make([]any, 0, list.Len())
		var convErr error
		list.Each(func(_ int, elem *attrval.Value) bool {
			var plain any
			plain, convErr = toAny(elem, depth+1, maxDepth)
			if convErr != nil {
				return false
			}
			out = append(out, plain)
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return out, nil

	case attrval.KindMap:
		attrs, _ := v.AsMap()
		out := make(map[string]any, attrs.Len())
		var convErr error
		attrs.Each(func(key string, list *attrval.List) bool {
			elems := make([]any, 0, list.Len())
			list.Each(func(_ int, elem *attrval.Value) bool {
				var plain any
				plain, convErr = toAny(elem, depth+1, maxDepth)
				if convErr != nil {
					return false
				}
				elems = append(elems, plain)
				return true
			})
			if convErr != nil {
				return false
			}
			out[key] = elems
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return out, nil

	default:
		return nil, &attrval.UnknownVariantError{Tag: uint8(v.Kind())}
	}
}

// FromAny converts plain Go values into an attribute value tree.
// maxDepth bounds recursion; zero or negative selects
// attrval.DefaultMaxDepth. Maps carrying the "@kind" discriminator
// become structured payloads; any other map becomes Attributes, with
// non-list values wrapped into single-element lists.
func FromAny(x any, maxDepth int) (*attrval.Value, error) {
	if maxDepth <= 0 {
		maxDepth = attrval.DefaultMaxDepth
	}
	return fromAny(x, 1, maxDepth)
}

func fromAny(x any, depth, maxDepth int) (*attrval.Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", attrval.ErrDepthExceeded, maxDepth)
	}

	switch t := x.(type) {
	case nil:
		return attrval.Null(), nil
	case bool:
		return attrval.Bool(t), nil
	case string:
		return attrval.String(t), nil
	case float64:
		return attrval.Double(t), nil
	case float32:
		return attrval.Double(float64(t)), nil
	case int:
		return attrval.Int64(int64(t)), nil
	case int32:
		return attrval.Int64(int64(t)), nil
	case int64:
		return attrval.Int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("%w: integer %d overflows int64", attrval.ErrMalformed, t)
		}
		return attrval.Int64(int64(t)), nil

	case []any:
		list := attrval.NewList()
		for _, elem := range t {
			v, err := fromAny(elem, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			list.Push(v)
		}
		return attrval.ListOf(list), nil

	case map[string]any:
		if kind, ok := t[kindKey].(string); ok {
			return structuredFromMap(kind, t)
		}
		attrs := attrval.NewAttributes()
		for key, raw := range t {
			elems, ok := raw.([]any)
			if !ok {
				elems = []any{raw}
			}
			list := attrval.NewList()
			for _, elem := range elems {
				v, err := fromAny(elem, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				list.Push(v)
			}
			attrs.Set(key, list)
		}
		return attrval.MapOf(attrs), nil

	default:
		return nil, fmt.Errorf("%w: unsupported Go type %T", attrval.ErrMalformed, x)
	}
}

func structuredFromMap(kind string, m map[string]any) (*attrval.Value, error) {
	switch kind {
	case kindExternalRef:
		return attrval.ExternalRef(&schema.ExternalReference{
			ID:          str(m, "id"),
			Description: str(m, "description"),
		})
	case kindOntologyClass:
		return attrval.Ontology(&schema.OntologyClass{
			ID:    str(m, "id"),
			Label: str(m, "label"),
		})
	case kindExperiment:
		created, err := parseTime(str(m, "created"))
		if err != nil {
			return nil, err
		}
		return attrval.ExperimentOf(&schema.Experiment{
			ID:               str(m, "id"),
			Name:             str(m, "name"),
			Description:      str(m, "description"),
			Created:          created,
			RunTime:          str(m, "run_time"),
			Molecule:         str(m, "molecule"),
			Strategy:         str(m, "strategy"),
			Selection:        str(m, "selection"),
			Library:          str(m, "library"),
			InstrumentModel:  str(m, "instrument_model"),
			SequencingCenter: str(m, "sequencing_center"),
		})
	case kindAnalysis:
		created, err := parseTime(str(m, "created"))
		if err != nil {
			return nil, err
		}
		updated, err := parseTime(str(m, "updated"))
		if err != nil {
			return nil, err
		}
		var software []string
		if raw, ok := m["software"].([]any); ok {
			for _, s := range raw {
				text, ok := s.(string)
				if !ok {
					return nil, fmt.Errorf("%w: analysis software entry %T", attrval.ErrMalformed, s)
				}
				software = append(software, text)
			}
		}
		return attrval.AnalysisOf(&schema.Analysis{
			ID:          str(m, "id"),
			Name:        str(m, "name"),
			Description: str(m, "description"),
			Created:     created,
			Updated:     updated,
			Type:        str(m, "type"),
			Software:    software,
		})
	default:
		return nil, fmt.Errorf("%w: structured kind %q", attrval.ErrUnknownVariant, kind)
	}
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", attrval.ErrMalformed, s)
	}
	return t.UTC(), nil
}
