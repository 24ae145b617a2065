// ABOUTME: Structured payload records stored inside attribute values
// ABOUTME: Defines external references, ontology classes, experiments, analyses

package schema

import "time"

// ExternalReference points at a record in an external resource,
// e.g. a PubMed identifier with a free-text description.
type ExternalReference struct {
	ID          string // CURIE-style identifier, e.g. "PMID:30962759"
	Description string // Optional human-readable description
}

// OntologyClass references a single class in an ontology,
// e.g. HP:0001166 "Arachnodactyly".
type OntologyClass struct {
	ID    string // CURIE-style identifier, e.g. "HP:0001166"
	Label string // Human-readable class label
}

// Experiment describes how a unit of biological material was assayed.
type Experiment struct {
	ID               string
	Name             string
	Description      string
	Created          time.Time
	RunTime          string // Lab-reported run time, free text
	Molecule         string // e.g. "genomic DNA"
	Strategy         string // Sequencing strategy, e.g. "WGS"
	Selection        string // Library selection method
	Library          string
	InstrumentModel  string
	SequencingCenter string
}

// Analysis describes a computational analysis applied to experimental data.
type Analysis struct {
	ID          string
	Name        string
	Description string
	Created     time.Time
	Updated     time.Time
	Type        string   // e.g. "variant calling"
	Software    []string // Software used, in pipeline order
}
