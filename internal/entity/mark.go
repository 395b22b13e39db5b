package entity

// Mark is the symbol a player places on the board.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Cell is the state of a single board square.
type Cell string

const (
	EmptyCell Cell = ""
	CellX     Cell = Cell(PlayerX)
	CellO     Cell = Cell(PlayerO)
)

func (that Mark) Valid() bool {
	return that == PlayerX || that == PlayerO
}

// Other returns the opposing mark.
func (that Mark) Other() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) Cell() Cell {
	return Cell(that)
}

func (that Mark) String() string {
	return string(that)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Mark returns the mark held by the cell and false for an empty cell.
func (that Cell) Mark() (Mark, bool) {
	if that.IsEmpty() {
		return "", false
	}
	return Mark(that), true
}
