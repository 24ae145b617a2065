// ABOUTME: Structural equality for payload records
// ABOUTME: Timestamps compare by instant, software lists element-wise

package schema

import "slices"

// Equal reports structural equality.
func (r *ExternalReference) Equal(o *ExternalReference) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.ID == o.ID && r.Description == o.Description
}

// Equal reports structural equality.
func (c *OntologyClass) Equal(o *OntologyClass) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.ID == o.ID && c.Label == o.Label
}

// Equal reports structural equality. Timestamps compare by instant.
func (e *Experiment) Equal(o *Experiment) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.ID == o.ID &&
		e.Name == o.Name &&
		e.Description == o.Description &&
		e.Created.Equal(o.Created) &&
		e.RunTime == o.RunTime &&
		e.Molecule == o.Molecule &&
		e.Strategy == o.Strategy &&
		e.Selection == o.Selection &&
		e.Library == o.Library &&
		e.InstrumentModel == o.InstrumentModel &&
		e.SequencingCenter == o.SequencingCenter
}

// Equal reports structural equality. Timestamps compare by instant and
// the software list is order-sensitive.
func (a *Analysis) Equal(o *Analysis) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.ID == o.ID &&
		a.Name == o.Name &&
		a.Description == o.Description &&
		a.Created.Equal(o.Created) &&
		a.Updated.Equal(o.Updated) &&
		a.Type == o.Type &&
		slices.Equal(a.Software, o.Software)
}
