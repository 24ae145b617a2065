// ABOUTME: Binary marshaling for structured payload records
// ABOUTME: Varint length-prefixed field layout shared with the wire codec

package schema

import (
	"errors"
	"time"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMalformedRecord indicates a truncated or invalid record payload.
var ErrMalformedRecord = errors.New("schema: malformed record")

// Field layout is positional: every string is a varint length prefix
// followed by UTF-8 bytes, timestamps are a presence byte followed by
// zigzag varint Unix seconds and varint nanoseconds, and string slices
// are a varint count followed by the elements. The surrounding wire
// codec length-prefixes the whole payload, so a decoder that does not
// recognize a record kind can still skip it.

// AppendExternalReference appends the wire form of r to buf.
func AppendExternalReference(buf []byte, r *ExternalReference) []byte {
	buf = appendString(buf, r.ID)
	buf = appendString(buf, r.Description)
	return buf
}

// UnmarshalExternalReference decodes an ExternalReference payload.
// The entire payload must be consumed.
func UnmarshalExternalReference(data []byte) (*ExternalReference, error) {
	var r ExternalReference
	var err error
	if r.ID, data, err = consumeString(data); err != nil {
		return nil, err
	}
	if r.Description, data, err = consumeString(data); err != nil {
		return nil, err
	}
	if len(data) != 0 {
		return nil, ErrMalformedRecord
	}
	return &r, nil
}

// AppendOntologyClass appends the wire form of c to buf.
func AppendOntologyClass(buf []byte, c *OntologyClass) []byte {
	buf = appendString(buf, c.ID)
	buf = appendString(buf, c.Label)
	return buf
}

// UnmarshalOntologyClass decodes an OntologyClass payload.
func UnmarshalOntologyClass(data []byte) (*OntologyClass, error) {
	var c OntologyClass
	var err error
	if c.ID, data, err = consumeString(data); err != nil {
		return nil, err
	}
	if c.Label, data, err = consumeString(data); err != nil {
		return nil, err
	}
	if len(data) != 0 {
		return nil, ErrMalformedRecord
	}
	return &c, nil
}

// AppendExperiment appends the wire form of e to buf.
func AppendExperiment(buf []byte, e *Experiment) []byte {
	buf = appendString(buf, e.ID)
	buf = appendString(buf, e.Name)
	buf = appendString(buf, e.Description)
	buf = appendTime(buf, e.Created)
	buf = appendString(buf, e.RunTime)
	buf = appendString(buf, e.Molecule)
	buf = appendString(buf, e.Strategy)
	buf = appendString(buf, e.Selection)
	buf = appendString(buf, e.Library)
	buf = appendString(buf, e.InstrumentModel)
	buf = appendString(buf, e.SequencingCenter)
	return buf
}

// UnmarshalExperiment decodes an Experiment payload.
func UnmarshalExperiment(data []byte) (*Experiment, error) {
	var e Experiment
	var err error
	fields := []*string{
		&e.ID, &e.Name, &e.Description,
	}
	for _, f := range fields {
		if *f, data, err = consumeString(data); err != nil {
			return nil, err
		}
	}
	if e.Created, data, err = consumeTime(data); err != nil {
		return nil, err
	}
	fields = []*string{
		&e.RunTime, &e.Molecule, &e.Strategy, &e.Selection,
		&e.Library, &e.InstrumentModel, &e.SequencingCenter,
	}
	for _, f := range fields {
		if *f, data, err = consumeString(data); err != nil {
			return nil, err
		}
	}
	if len(data) != 0 {
		return nil, ErrMalformedRecord
	}
	return &e, nil
}

// AppendAnalysis appends the wire form of a to buf.
func AppendAnalysis(buf []byte, a *Analysis) []byte {
	buf = appendString(buf, a.ID)
	buf = appendString(buf, a.Name)
	buf = appendString(buf, a.Description)
	buf = appendTime(buf, a.Created)
	buf = appendTime(buf, a.Updated)
	buf = appendString(buf, a.Type)
	buf = protowire.AppendVarint(buf, uint64(len(a.Software)))
	for _, s := range a.Software {
		buf = appendString(buf, s)
	}
	return buf
}

// UnmarshalAnalysis decodes an Analysis payload.
func UnmarshalAnalysis(data []byte) (*Analysis, error) {
	var a Analysis
	var err error
	for _, f := range []*string{&a.ID, &a.Name, &a.Description} {
		if *f, data, err = consumeString(data); err != nil {
			return nil, err
		}
	}
	if a.Created, data, err = consumeTime(data); err != nil {
		return nil, err
	}
	if a.Updated, data, err = consumeTime(data); err != nil {
		return nil, err
	}
	if a.Type, data, err = consumeString(data); err != nil {
		return nil, err
	}
	count, n := protowire.ConsumeVarint(data)
	if n < 0 || count > uint64(len(data)) {
		return nil, ErrMalformedRecord
	}
	data = data[n:]
	if count > 0 {
		a.Software = make([]string, 0, count)
		for i := uint64(0); i < count; i++ {
			var s string
			if s, data, err = consumeString(data); err != nil {
				return nil, err
			}
			a.Software = append(a.Software, s)
		}
	}
	if len(data) != 0 {
		return nil, ErrMalformedRecord
	}
	return &a, nil
}

func appendString(buf []byte, s string) []byte {
	buf = protowire.AppendVarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func consumeString(data []byte) (string, []byte, error) {
	size, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return "", nil, ErrMalformedRecord
	}
	data = data[n:]
	if size > uint64(len(data)) {
		return "", nil, ErrMalformedRecord
	}
	s := string(data[:size])
	if !utf8.ValidString(s) {
		return "", nil, ErrMalformedRecord
	}
	return s, data[size:], nil
}

// appendTime writes a presence byte, then zigzag varint Unix seconds
// and varint nanoseconds. The explicit presence byte keeps the zero
// time distinct from the Unix epoch.
func appendTime(buf []byte, t time.Time) []byte {
	if t.IsZero() {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(t.Unix()))
	return protowire.AppendVarint(buf, uint64(t.Nanosecond()))
}

func consumeTime(data []byte) (time.Time, []byte, error) {
	if len(data) < 1 {
		return time.Time{}, nil, ErrMalformedRecord
	}
	present := data[0]
	data = data[1:]
	if present == 0 {
		return time.Time{}, data, nil
	}
	if present != 1 {
		return time.Time{}, nil, ErrMalformedRecord
	}
	u, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return time.Time{}, nil, ErrMalformedRecord
	}
	sec := protowire.DecodeZigZag(u)
	data = data[n:]
	nanos, n := protowire.ConsumeVarint(data)
	if n < 0 || nanos > 999_999_999 {
		return time.Time{}, nil, ErrMalformedRecord
	}
	return time.Unix(sec, int64(nanos)).UTC(), data[n:], nil
}
