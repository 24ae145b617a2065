// ABOUTME: Decoder half of the wire codec
// ABOUTME: Mirrors the encoder, enforcing depth, size and validity bounds

package wire

import (
	"fmt"
	"math"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/buske/phenoval/pkg/attrval"
)

// Decode deserializes one attribute value tree from data. The whole
// buffer must be consumed; trailing bytes are an error. On any error
// no partial tree is returned — a single bad node anywhere invalidates
// the buffer.
func (c *Codec) Decode(data []byte) (*attrval.Value, error) {
	v, err := c.decode(data)
	c.metrics.ObserveDecode(len(data), err)
	if err != nil {
		c.log.Debug().
			Err(err).
			Int("buffer_bytes", len(data)).
			Msg("rejected attribute value buffer")
		return nil, err
	}
	return v, nil
}

func (c *Codec) decode(data []byte) (*attrval.Value, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", attrval.ErrMalformed)
	}
	if data[0] != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", attrval.ErrMalformed, data[0])
	}

	d := &decoder{c: c, buf: data, pos: 1}
	v, err := d.value(1)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.buf) {
		return nil, fmt.Errorf("%w: %d trailing bytes", attrval.ErrMalformed, len(d.buf)-d.pos)
	}
	return v, nil
}

type decoder struct {
	c   *Codec
	buf []byte
	pos int
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.pos
}

func (d *decoder) varint() (uint64, error) {
	u, n := protowire.ConsumeVarint(d.buf[d.pos:])
	if n < 0 {
		return 0, fmt.Errorf("%w: invalid varint at offset %d", attrval.ErrMalformed, d.pos)
	}
	d.pos += n
	return u, nil
}

func (d *decoder) bytes(size uint64) ([]byte, error) {
	if size > uint64(d.remaining()) {
		return nil, fmt.Errorf("%w: truncated at offset %d", attrval.ErrMalformed, d.pos)
	}
	out := d.buf[d.pos : d.pos+int(size)]
	d.pos += int(size)
	return out, nil
}

func (d *decoder) str() (string, error) {
	size, err := d.varint()
	if err != nil {
		return "", err
	}
	raw, err := d.bytes(size)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: invalid UTF-8 at offset %d", attrval.ErrMalformed, d.pos-len(raw))
	}
	return string(raw), nil
}

// count reads and bounds-checks a collection element count. The bound
// is checked before anything is allocated, so a buffer claiming an
// enormous count costs nothing. A count larger than the bytes left in
// the buffer cannot be honest either: every element takes at least one
// byte.
func (d *decoder) count() (int, error) {
	u, err := d.varint()
	if err != nil {
		return 0, err
	}
	if u > uint64(d.c.maxSize) {
		return 0, fmt.Errorf("%w: collection of %d exceeds limit %d", attrval.ErrSizeLimit, u, d.c.maxSize)
	}
	if u > uint64(d.remaining()) {
		return 0, fmt.Errorf("%w: collection of %d exceeds buffer", attrval.ErrMalformed, u)
	}
	return int(u), nil
}

func (d *decoder) value(depth int) (*attrval.Value, error) {
	if depth > d.c.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", attrval.ErrDepthExceeded, d.c.maxDepth)
	}
	if d.remaining() < 1 {
		return nil, fmt.Errorf("%w: missing tag at offset %d", attrval.ErrMalformed, d.pos)
	}
	tag := attrval.Kind(d.buf[d.pos])
	d.pos++

	switch tag {
	case attrval.KindString:
		s, err := d.str()
		if err != nil {
			return nil, err
		}
		return attrval.String(s), nil

	case attrval.KindInt64:
		u, err := d.varint()
		if err != nil {
			return nil, err
		}
		return attrval.Int64(protowire.DecodeZigZag(u)), nil

	case attrval.KindInt32:
		u, err := d.varint()
		if err != nil {
			return nil, err
		}
		i := protowire.DecodeZigZag(u)
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, fmt.Errorf("%w: int32 payload %d out of range", attrval.ErrMalformed, i)
		}
		return attrval.Int32(int32(i)), nil

	case attrval.KindBool:
		raw, err := d.bytes(1)
		if err != nil {
			return nil, err
		}
		switch raw[0] {
		case 0:
			return attrval.Bool(false), nil
		case 1:
			return attrval.Bool(true), nil
		default:
			return nil, fmt.Errorf("%w: bool payload %d", attrval.ErrMalformed, raw[0])
		}

	case attrval.KindDouble:
		u, n := protowire.ConsumeFixed64(d.buf[d.pos:])
		if n < 0 {
			return nil, fmt.Errorf("%w: truncated double at offset %d", attrval.ErrMalformed, d.pos)
		}
		d.pos += n
		return attrval.Double(math.Float64frombits(u)), nil

	case attrval.KindNull:
		return attrval.Null(), nil

	case attrval.KindExternalRef, attrval.KindOntologyClass,
		attrval.KindExperiment, attrval.KindAnalysis:
		lc, ok := d.c.leafs[tag]
		if !ok {
			return nil, &attrval.UnknownVariantError{Tag: uint8(tag)}
		}
		size, err := d.varint()
		if err != nil {
			return nil, err
		}
		payload, err := d.bytes(size)
		if err != nil {
			return nil, err
		}
		v, err := lc.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %s payload: %v", attrval.ErrMalformed, tag, err)
		}
		return v, nil

	case attrval.KindList:
		list, err := d.list(depth)
		if err != nil {
			return nil, err
		}
		return attrval.ListOf(list), nil

	case attrval.KindMap:
		entries, err := d.count()
		if err != nil {
			return nil, err
		}
		attrs := attrval.NewAttributes()
		for i := 0; i < entries; i++ {
			key, err := d.str()
			if err != nil {
				return nil, err
			}
			list, err := d.list(depth)
			if err != nil {
				return nil, err
			}
			attrs.Set(key, list)
		}
		return attrval.MapOf(attrs), nil

	default:
		return nil, &attrval.UnknownVariantError{Tag: uint8(tag)}
	}
}

func (d *decoder) list(depth int) (*attrval.List, error) {
	n, err := d.count()
	if err != nil {
		return nil, err
	}
	list := attrval.NewList()
	for i := 0; i < n; i++ {
		elem, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		list.Push(elem)
	}
	return list, nil
}
