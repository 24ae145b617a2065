// Package phenopacket defines the flat phenotype record shapes that
// embed the attribute value core. The records carry no codec logic of
// their own: free-form annotations ride in attrval.Attributes, and
// ontology-coded fields reference pkg/schema payload records.
package phenopacket

import (
	"time"

	"github.com/buske/phenoval/pkg/attrval"
	"github.com/buske/phenoval/pkg/schema"
)

// Individual is the subject of a phenopacket.
type Individual struct {
	ID            string
	AlternateIDs  []string
	DateOfBirth   time.Time
	Sex           Sex
	KaryotypicSex KaryotypicSex
	Taxonomy      *schema.OntologyClass
	Attributes    *attrval.Attributes
}

// PhenotypicFeature is a single observed (or explicitly excluded)
// phenotype.
type PhenotypicFeature struct {
	Type        *schema.OntologyClass
	Severity    *schema.OntologyClass
	Modifiers   []*schema.OntologyClass
	Onset       *schema.OntologyClass
	Excluded    bool // True when the phenotype was looked for and not found
	Description string
	Evidence    []*schema.ExternalReference
	Attributes  *attrval.Attributes
}

// Biosample is a unit of biological material a measurement derives from.
type Biosample struct {
	ID               string
	IndividualID     string
	Description      string
	SampledTissue    *schema.OntologyClass
	TumorProgression *schema.OntologyClass
	Experiments      []*schema.Experiment
	Analyses         []*schema.Analysis
	Attributes       *attrval.Attributes
}

// Disease is a diagnosis with optional onset information.
type Disease struct {
	Term       *schema.OntologyClass
	Onset      *schema.OntologyClass
	Stages     []*schema.OntologyClass
	Attributes *attrval.Attributes
}

// Variant is a genomic variant described against a named assembly.
type Variant struct {
	Assembly   string // e.g. "GRCh38"
	Chromosome string
	Position   int64 // 1-based
	Reference  string
	Alternate  string
	Zygosity   *schema.OntologyClass
	Attributes *attrval.Attributes
}

// PedigreePerson is one row of a PED-style pedigree.
type PedigreePerson struct {
	FamilyID     string
	IndividualID string
	PaternalID   string
	MaternalID   string
	Sex          Sex
	Status       AffectedStatus
}

// Pedigree relates the individuals of a family.
type Pedigree struct {
	Persons []*PedigreePerson
}

// Resource identifies an ontology or nomenclature the record's terms
// are drawn from.
type Resource struct {
	ID              string // e.g. "hp"
	Name            string
	NamespacePrefix string // e.g. "HP"
	URL             string
	Version         string
	IRIPrefix       string
}

// MetaData carries the provenance required to interpret a phenopacket.
type MetaData struct {
	Created            time.Time
	CreatedBy          string
	SubmittedBy        string
	Resources          []*Resource
	ExternalReferences []*schema.ExternalReference
	SchemaVersion      string
}

// Phenopacket is the root record: one subject with their phenotypes,
// samples, diagnoses and variants, plus provenance.
type Phenopacket struct {
	ID                 string
	Subject            *Individual
	PhenotypicFeatures []*PhenotypicFeature
	Biosamples         []*Biosample
	Diseases           []*Disease
	Variants           []*Variant
	Pedigree           *Pedigree
	MetaData           *MetaData
	Attributes         *attrval.Attributes
}

// Annotations returns the packet's attribute map, creating it on first
// use so callers can annotate without a nil check.
func (p *Phenopacket) Annotations() *attrval.Attributes {
	if p.Attributes == nil {
		p.Attributes = attrval.NewAttributes()
	}
	return p.Attributes
}
