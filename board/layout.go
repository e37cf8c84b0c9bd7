package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/daystram/reversi/position"
)

// UnmarshalLayout parses a layout string into b. A layout lists the rows from
// row 1 to row 8 separated by '/', using 'x' for Black, 'o' for White, '.' or a
// digit run for empty cells, followed by the side to move ('x' or 'o'). If
// that side has no move but its opponent does, the turn goes to the opponent.
func UnmarshalLayout(layout string, b *Board) error {
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidPosition)
	}
	segments := strings.Fields(layout)
	if len(segments) != 2 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidPosition)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidPosition)
	}
	var bb Board
	for row := 0; row < int(Height); row++ {
		col := 0
		for _, cell := range rows[row] {
			if col >= int(Width) {
				return fmt.Errorf("%w: row %d overflows", ErrInvalidPosition, row+1)
			}
			switch cell {
			case 'x', 'X':
				bb.set(row, col, SideBlack)
				col++
			case 'o', 'O':
				bb.set(row, col, SideWhite)
				col++
			case '.':
				col++
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					col += int(cell - '0')
					continue
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidPosition, string(cell))
			}
		}
		if col != int(Width) {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidPosition, row+1, col)
		}
	}

	switch segments[1] {
	case "x", "X":
		bb.turn = SideBlack
	case "o", "O":
		bb.turn = SideWhite
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidPosition)
	}
	// a side without moves passes as long as the game goes on
	if bb.legalBitmap(bb.turn) == 0 && bb.legalBitmap(bb.turn.Opposite()) != 0 {
		bb.turn = bb.turn.Opposite()
	}

	b.occupied, b.color, b.turn = bb.occupied, bb.color, bb.turn
	return nil
}

// Layout returns the layout string of the board.
func (b *Board) Layout() string {
	builder := strings.Builder{}
	var skip int
	for row := position.Pos(0); row < Height; row++ {
		for col := position.Pos(0); col < Width; col++ {
			for skip = 0; col < Width && maskCell[row*Width+col]&b.occupied == 0; col++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if col < Width {
				_, _ = builder.WriteRune(b.getByPos(row*Width + col).Symbol())
			}
		}
		if row < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}
	_, _ = builder.WriteRune(' ')
	_, _ = builder.WriteRune(b.turn.Symbol())
	return builder.String()
}
