// ABOUTME: Encoder half of the wire codec
// ABOUTME: Depth-first pre-order, every variable-size field length-prefixed

package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/buske/phenoval/pkg/attrval"
)

// Encode serializes v to the versioned tagged binary form. Encoding
// enforces the same depth bound as decoding, so a buffer produced here
// always decodes under the same configuration.
func (c *Codec) Encode(v *attrval.Value) ([]byte, error) {
	buf := []byte{FormatVersion}
	buf, err := c.appendValue(buf, v, 1)
	c.metrics.ObserveEncode(len(buf), err)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (c *Codec) appendValue(buf []byte, v *attrval.Value, depth int) ([]byte, error) {
	if depth > c.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", attrval.ErrDepthExceeded, c.maxDepth)
	}
	kind := v.Kind()
	buf = append(buf, byte(kind))

	switch kind {
	case attrval.KindString:
		s, _ := v.AsString()
		buf = protowire.AppendVarint(buf, uint64(len(s)))
		return append(buf, s...), nil

	case attrval.KindInt64:
		i, _ := v.AsInt64()
		return protowire.AppendVarint(buf, protowire.EncodeZigZag(i)), nil

	case attrval.KindInt32:
		i, _ := v.AsInt32()
		return protowire.AppendVarint(buf, protowire.EncodeZigZag(int64(i))), nil

	case attrval.KindBool:
		b, _ := v.AsBool()
		if b {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil

	case attrval.KindDouble:
		f, _ := v.AsDouble()
		return protowire.AppendFixed64(buf, math.Float64bits(f)), nil

	case attrval.KindNull:
		return buf, nil

	case attrval.KindExternalRef, attrval.KindOntologyClass,
		attrval.KindExperiment, attrval.KindAnalysis:
		lc, ok := c.leafs[kind]
		if !ok {
			return nil, &attrval.UnknownVariantError{Tag: uint8(kind)}
		}
		payload, err := lc.Encode(v)
		if err != nil {
			return nil, err
		}
		buf = protowire.AppendVarint(buf, uint64(len(payload)))
		return append(buf, payload...), nil

	case attrval.KindList:
		list, _ := v.AsList()
		return c.appendList(buf, list, depth)

	case attrval.KindMap:
		attrs, _ := v.AsMap()
		buf = protowire.AppendVarint(buf, uint64(attrs.Len()))
		var err error
		attrs.Each(func(key string, list *attrval.List) bool {
			buf = protowire.AppendVarint(buf, uint64(len(key)))
			buf = append(buf, key...)
			buf, err = c.appendList(buf, list, depth)
			return err == nil
		})
		if err != nil {
			return nil, err
		}
		return buf, nil

	default:
		return nil, &attrval.UnknownVariantError{Tag: uint8(kind)}
	}
}

// appendList writes a varint element count followed by the elements.
// Elements of a list (or of a map entry's list) sit one level below
// the owning collection.
func (c *Codec) appendList(buf []byte, list *attrval.List, depth int) ([]byte, error) {
	buf = protowire.AppendVarint(buf, uint64(list.Len()))
	var err error
	list.Each(func(_ int, elem *attrval.Value) bool {
		buf, err = c.appendValue(buf, elem, depth+1)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}
