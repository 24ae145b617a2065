// ABOUTME: Tagged binary codec for attribute value trees
// ABOUTME: One version byte, then pre-order recursive descent with varint framing

package wire

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/buske/phenoval/internal/logger"
	"github.com/buske/phenoval/internal/metrics"
	"github.com/buske/phenoval/pkg/attrval"
	"github.com/buske/phenoval/pkg/schema"
)

// FormatVersion is the first byte of every encoded buffer. Decoders
// reject buffers carrying a version they do not know instead of
// guessing at the layout.
const FormatVersion = 1

// Metrics is the instrument set the codec records into; construct one
// with NewMetrics and share it across codec instances.
type Metrics = metrics.CodecMetrics

// NewMetrics creates and registers codec metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return metrics.NewCodecMetrics(reg)
}

// LeafCodec encodes and decodes one structured payload kind. The codec
// treats structured payloads as opaque byte strings; the schema layer
// owns their layout.
type LeafCodec struct {
	Encode func(v *attrval.Value) ([]byte, error)
	Decode func(data []byte) (*attrval.Value, error)
}

// Config controls a Codec. The zero value selects all defaults.
type Config struct {
	// MaxDepth bounds decode recursion. Default attrval.DefaultMaxDepth.
	MaxDepth int

	// MaxCollectionSize bounds per-collection element counts claimed by
	// a buffer. Default attrval.DefaultMaxCollectionSize.
	MaxCollectionSize int

	// Log receives debug records for rejected buffers. Nil means silent.
	Log *zerolog.Logger

	// Metrics receives operation counts and sizes. Nil records nothing.
	Metrics *Metrics
}

// Codec encodes and decodes attribute value trees. A Codec holds no
// state between calls and is safe for concurrent use.
type Codec struct {
	maxDepth int
	maxSize  int
	log      zerolog.Logger
	metrics  *Metrics
	leafs    map[attrval.Kind]LeafCodec
}

// NewCodec creates a codec from cfg, applying defaults for unset
// fields and registering the standard structured leaf codecs.
func NewCodec(cfg Config) *Codec {
	c := &Codec{
		maxDepth: cfg.MaxDepth,
		maxSize:  cfg.MaxCollectionSize,
		log:      logger.Nop(),
		metrics:  cfg.Metrics,
		leafs:    defaultLeafCodecs(),
	}
	if c.maxDepth <= 0 {
		c.maxDepth = attrval.DefaultMaxDepth
	}
	if c.maxSize <= 0 {
		c.maxSize = attrval.DefaultMaxCollectionSize
	}
	if cfg.Log != nil {
		c.log = *cfg.Log
	}
	return c
}

// WithLeafCodec returns a copy of c using lc for the given structured
// kind, replacing the standard codec for that kind.
func (c *Codec) WithLeafCodec(kind attrval.Kind, lc LeafCodec) *Codec {
	out := *c
	out.leafs = make(map[attrval.Kind]LeafCodec, len(c.leafs))
	for k, v := range c.leafs {
		out.leafs[k] = v
	}
	out.leafs[kind] = lc
	return &out
}

func defaultLeafCodecs() map[attrval.Kind]LeafCodec {
	return map[attrval.Kind]LeafCodec{
		attrval.KindExternalRef: {
			Encode: func(v *attrval.Value) ([]byte, error) {
				r, err := v.AsExternalRef()
				if err != nil {
					return nil, err
				}
				return schema.AppendExternalReference(nil, r), nil
			},
			Decode: func(data []byte) (*attrval.Value, error) {
				r, err := schema.UnmarshalExternalReference(data)
				if err != nil {
					return nil, err
				}
				return attrval.ExternalRef(r)
			},
		},
		attrval.KindOntologyClass: {
			Encode: func(v *attrval.Value) ([]byte, error) {
				cl, err := v.AsOntology()
				if err != nil {
					return nil, err
				}
				return schema.AppendOntologyClass(nil, cl), nil
			},
			Decode: func(data []byte) (*attrval.Value, error) {
				cl, err := schema.UnmarshalOntologyClass(data)
				if err != nil {
					return nil, err
				}
				return attrval.Ontology(cl)
			},
		},
		attrval.KindExperiment: {
			Encode: func(v *attrval.Value) ([]byte, error) {
				e, err := v.AsExperiment()
				if err != nil {
					return nil, err
				}
				return schema.AppendExperiment(nil, e), nil
			},
			Decode: func(data []byte) (*attrval.Value, error) {
				e, err := schema.UnmarshalExperiment(data)
				if err != nil {
					return nil, err
				}
				return attrval.ExperimentOf(e)
			},
		},
		attrval.KindAnalysis: {
			Encode: func(v *attrval.Value) ([]byte, error) {
				a, err := v.AsAnalysis()
				if err != nil {
					return nil, err
				}
				return schema.AppendAnalysis(nil, a), nil
			},
			Decode: func(data []byte) (*attrval.Value, error) {
				a, err := schema.UnmarshalAnalysis(data)
				if err != nil {
					return nil, err
				}
				return attrval.AnalysisOf(a)
			},
		},
	}
}
