// Package interop bridges attribute value trees to and from CBOR for
// exchange with systems that do not speak the native wire format.
//
// The mapping is deliberately plain: lists become CBOR arrays, maps
// become CBOR maps of string key to array, structured payloads become
// maps carrying an "@kind" discriminator. It is not kind-preserving
// for integers — Int32 comes back as Int64 — and timestamps travel as
// RFC 3339 strings with nanosecond precision. Use pkg/wire when
// byte-exact round-trips matter.
package interop

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/buske/phenoval/pkg/attrval"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. Same
// logical data always produces identical bytes.
var encMode cbor.EncMode

// decMode decodes standard CBOR with string-keyed maps for any-typed
// targets, since attribute keys are always strings.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("interop: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("interop: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v as deterministic CBOR at attrval.DefaultMaxDepth.
func Marshal(v *attrval.Value) ([]byte, error) {
	plain, err := ToAny(v, attrval.DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(plain)
}

// Unmarshal decodes CBOR data into an attribute value tree at
// attrval.DefaultMaxDepth.
func Unmarshal(data []byte) (*attrval.Value, error) {
	var plain any
	if err := decMode.Unmarshal(data, &plain); err != nil {
		return nil, err
	}
	return FromAny(plain, attrval.DefaultMaxDepth)
}
