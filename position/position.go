package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of addressable cells.
	TotalCells = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a row-major cell index: row*8 + col, row 0 being the top row.
type Pos int8

func NewPos(row, col int) Pos {
	return Pos(row)*MaxComponentScalar + Pos(col)
}

func NewPosFromNotation(n string) (Pos, error) {
	row, col, err := notationToRowCol(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*row + col, nil
}

// InBounds reports whether the given row and column address a cell.
func InBounds(row, col int) bool {
	return 0 <= row && row < int(MaxComponentScalar) && 0 <= col && col < int(MaxComponentScalar)
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if p < 0 || p >= TotalCells {
		return ""
	}
	return p.Col().NotationComponentCol() + p.Row().NotationComponentRow()
}

func (p Pos) Row() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Col() Pos {
	return p % MaxComponentScalar
}

func notationToRowCol(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func notationToCol(c byte) (Pos, error) {
	if 'A' <= c && c <= 'Z' {
		c |= 0x20 // lowercase is +32 uppercase
	}
	col := int(c) - 'a'
	if col < 0 || int(MaxComponentScalar) <= col {
		return 0, ErrInvalidNotation
	}
	return Pos(col), nil
}

func notationToRow(r byte) (Pos, error) {
	row := int(r) - '1'
	if row < 0 || int(MaxComponentScalar) <= row {
		return 0, ErrInvalidNotation
	}
	return Pos(row), nil
}

func (p Pos) NotationComponentCol() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentRow() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('1' + p))
}
