// ABOUTME: Extraction helpers over record annotations
// ABOUTME: Walks attribute trees to collect ontology-coded values

package phenopacket

import (
	"github.com/buske/phenoval/pkg/attrval"
	"github.com/buske/phenoval/pkg/schema"
)

// AnnotationTerms returns every ontology class stored anywhere in the
// attribute map, however deeply nested, in traversal order. Curators
// tuck coded findings inside free-form annotations; this surfaces them
// for indexing without knowing the annotation layout.
func AnnotationTerms(attrs *attrval.Attributes) ([]*schema.OntologyClass, error) {
	if attrs == nil || attrs.Len() == 0 {
		return nil, nil
	}

	var terms []*schema.OntologyClass
	err := attrval.Walk(attrval.MapOf(attrs), 0, func(_ int, v *attrval.Value) error {
		if v.Kind() != attrval.KindOntologyClass {
			return nil
		}
		c, err := v.AsOntology()
		if err != nil {
			return err
		}
		terms = append(terms, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// AnnotationTerms collects ontology classes from the packet's own
// annotations.
func (p *Phenopacket) AnnotationTerms() ([]*schema.OntologyClass, error) {
	return AnnotationTerms(p.Attributes)
}
