package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/reversi/position"
)

type bitmap uint64

// Shifts move every cell one step in a direction. Row 0 is north, column 0 is
// west; cells pushed off the board are dropped.

func ShiftN(bm bitmap) bitmap {
	return bm >> 8
}

func ShiftS(bm bitmap) bitmap {
	return bm << 8
}

func ShiftE(bm bitmap) bitmap {
	return (bm << 1) &^ maskCol[0]
}

func ShiftW(bm bitmap) bitmap {
	return (bm >> 1) &^ maskCol[7]
}

func ShiftNE(bm bitmap) bitmap {
	return (bm >> 7) &^ maskCol[0]
}

func ShiftNW(bm bitmap) bitmap {
	return (bm >> 9) &^ maskCol[7]
}

func ShiftSE(bm bitmap) bitmap {
	return (bm << 9) &^ maskCol[0]
}

func ShiftSW(bm bitmap) bitmap {
	return (bm << 7) &^ maskCol[7]
}

var directions = [8]func(bitmap) bitmap{
	ShiftN, ShiftNE, ShiftE, ShiftSE, ShiftS, ShiftSW, ShiftW, ShiftNW,
}

// captureRun walks from cell along shift while opp discs are seen. The run is
// returned only if it is non-empty and closed by an own disc.
func captureRun(cell, own, opp bitmap, shift func(bitmap) bitmap) bitmap {
	var run bitmap
	next := shift(cell)
	for next&opp != 0 {
		run |= next
		next = shift(next)
	}
	if run != 0 && next&own != 0 {
		return run
	}
	return 0
}

func (bm *bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

func (bm bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

func (bm bitmap) BitCount() int {
	return bits.OnesCount64(uint64(bm))
}

func (bm bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for row := position.Pos(0); row < Height; row++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", row.NotationComponentRow()))
		for col := position.Pos(0); col < Width; col++ {
			if bm&maskCell[row*Width+col] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for col := position.Pos(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", col.NotationComponentCol()))
	}
	return builder.String()
}
