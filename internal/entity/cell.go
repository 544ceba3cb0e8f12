package entity

// Cell is the content of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "x"
	case MarkO:
		return "o"
	default:
		return ""
	}
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}
