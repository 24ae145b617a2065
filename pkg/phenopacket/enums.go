// ABOUTME: Closed enumerations shared by the phenotype records
// ABOUTME: Zero value is always the UNKNOWN member

package phenopacket

// Sex is the phenotypic sex of an individual.
type Sex uint8

const (
	SexUnknown Sex = iota
	SexFemale
	SexMale
	SexOther
)

// String returns the enum name.
func (s Sex) String() string {
	switch s {
	case SexFemale:
		return "FEMALE"
	case SexMale:
		return "MALE"
	case SexOther:
		return "OTHER_SEX"
	default:
		return "UNKNOWN_SEX"
	}
}

// KaryotypicSex is the chromosomal sex of an individual.
type KaryotypicSex uint8

const (
	KaryotypeUnknown KaryotypicSex = iota
	KaryotypeXX
	KaryotypeXY
	KaryotypeXO
	KaryotypeXXY
	KaryotypeXXX
	KaryotypeXXYY
	KaryotypeXXXY
	KaryotypeXXXX
	KaryotypeXYY
	KaryotypeOther
)

// String returns the enum name.
func (k KaryotypicSex) String() string {
	switch k {
	case KaryotypeXX:
		return "XX"
	case KaryotypeXY:
		return "XY"
	case KaryotypeXO:
		return "XO"
	case KaryotypeXXY:
		return "XXY"
	case KaryotypeXXX:
		return "XXX"
	case KaryotypeXXYY:
		return "XXYY"
	case KaryotypeXXXY:
		return "XXXY"
	case KaryotypeXXXX:
		return "XXXX"
	case KaryotypeXYY:
		return "XYY"
	case KaryotypeOther:
		return "OTHER_KARYOTYPE"
	default:
		return "UNKNOWN_KARYOTYPE"
	}
}

// AffectedStatus records whether a pedigree member expresses the
// proband's phenotype.
type AffectedStatus uint8

const (
	StatusMissing AffectedStatus = iota
	StatusUnaffected
	StatusAffected
)

// String returns the enum name.
func (a AffectedStatus) String() string {
	switch a {
	case StatusUnaffected:
		return "UNAFFECTED"
	case StatusAffected:
		return "AFFECTED"
	default:
		return "MISSING"
	}
}
