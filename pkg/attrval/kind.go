// ABOUTME: Variant tags for the attribute value union
// ABOUTME: Values are stable and double as wire tags

package attrval

// Kind identifies which variant of a Value is populated.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no constructed Value carries it.
	KindInvalid Kind = 0

	// KindString holds a UTF-8 string
	KindString Kind = 1

	// KindInt64 holds a 64-bit signed integer
	KindInt64 Kind = 2

	// KindInt32 holds a 32-bit signed integer
	KindInt32 Kind = 3

	// KindBool holds a boolean
	KindBool Kind = 4

	// KindDouble holds a 64-bit float
	KindDouble Kind = 5

	// KindNull is the explicit null marker (valid data, not absence)
	KindNull Kind = 6

	// KindExternalRef holds a schema.ExternalReference
	KindExternalRef Kind = 7

	// KindOntologyClass holds a schema.OntologyClass
	KindOntologyClass Kind = 8

	// KindExperiment holds a schema.Experiment
	KindExperiment Kind = 9

	// KindAnalysis holds a schema.Analysis
	KindAnalysis Kind = 10

	// KindList holds a nested List
	KindList Kind = 11

	// KindMap holds nested Attributes
	KindMap Kind = 12
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	case KindInt32:
		return "int32"
	case KindBool:
		return "bool"
	case KindDouble:
		return "double"
	case KindNull:
		return "null"
	case KindExternalRef:
		return "external_reference"
	case KindOntologyClass:
		return "ontology_class"
	case KindExperiment:
		return "experiment"
	case KindAnalysis:
		return "analysis"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// DefaultMaxDepth bounds recursion in traversal, equality, copy and
// decode when the caller does not configure a limit.
const DefaultMaxDepth = 64

// DefaultMaxCollectionSize bounds per-collection element counts during
// decode when the caller does not configure a limit.
const DefaultMaxCollectionSize = 10000
