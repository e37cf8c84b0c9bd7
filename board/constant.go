package board

import (
	"github.com/daystram/reversi/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	DefaultStartingLayout = "8/8/8/3xo3/3ox3/8/8/8 x"

	startingOccupied bitmap = 0x_00_00_00_18_18_00_00_00
	startingColor    bitmap = 0x_00_00_00_08_10_00_00_00
)

var (
	maskCol = [Width]bitmap{
		0x_01_01_01_01_01_01_01_01,
		0x_02_02_02_02_02_02_02_02,
		0x_04_04_04_04_04_04_04_04,
		0x_08_08_08_08_08_08_08_08,
		0x_10_10_10_10_10_10_10_10,
		0x_20_20_20_20_20_20_20_20,
		0x_40_40_40_40_40_40_40_40,
		0x_80_80_80_80_80_80_80_80,
	}
	maskCell [TotalCells]bitmap

	// Corners lists cells a1, h1, a8 and h8.
	Corners = [4]position.Pos{0, 7, 56, 63}
)

func init() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}
}
