package tables

// Kind classifies a column by its non-missing contents. It decides how the
// column's values are compared across tables.
type Kind int

const (
	// KindEmpty marks a column whose cells are all missing.
	KindEmpty Kind = iota

	// KindNumber marks a column with at least one non-missing cell where
	// every non-missing cell parses as a number.
	KindNumber

	// KindText marks every other column.
	KindText
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// inferKind classifies a column's cells.
func inferKind(cells []Value) Kind {
	present := false
	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		if !c.numeric {
			return KindText
		}
		present = true
	}
	if !present {
		return KindEmpty
	}
	return KindNumber
}
