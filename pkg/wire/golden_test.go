// ABOUTME: Byte-layout stability tests for the wire format
// ABOUTME: These bytes are the contract; a mismatch is a format break

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/buske/phenoval/pkg/attrval"
)

func TestGoldenLayout(t *testing.T) {
	codec := NewCodec(Config{})

	attrs := attrval.NewAttributes()
	attrs.Set("color", attrval.NewList(attrval.String("red"), attrval.Null()))

	cases := []struct {
		name string
		v    *attrval.Value
		hex  string
	}{
		// version | tag | payload
		{"null", attrval.Null(), "0106"},
		{"bool true", attrval.Bool(true), "010401"},
		{"bool false", attrval.Bool(false), "010400"},
		{"int64 -1 zigzag", attrval.Int64(-1), "010201"},
		{"int64 1 zigzag", attrval.Int64(1), "010202"},
		{"int32 -2 zigzag", attrval.Int32(-2), "010303"},
		{"empty string", attrval.String(""), "010100"},
		{"string red", attrval.String("red"), "010103726564"},
		{"double 1.0 fixed64", attrval.Double(1.0), "0105000000000000f03f"},
		{"empty list", attrval.ListOf(attrval.NewList()), "010b00"},
		{"empty map", attrval.MapOf(attrval.NewAttributes()), "010c00"},
		// map: count=1, key "color", list count=2, "red", null
		{"map color", attrval.MapOf(attrs), "010c0105636f6c6f72020103726564" + "06"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := hex.DecodeString(tc.hex)
			if err != nil {
				t.Fatalf("bad fixture hex: %v", err)
			}

			got, err := codec.Encode(tc.v)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("layout drift:\n  got:  %x\n  want: %x", got, want)
			}

			// Fixture bytes must also decode back to the value
			back, err := codec.Decode(want)
			if err != nil {
				t.Fatalf("decode of fixture failed: %v", err)
			}
			if !back.Equal(tc.v) {
				t.Errorf("fixture decodes to a different value")
			}
		})
	}
}
