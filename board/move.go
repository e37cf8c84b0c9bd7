package board

import "github.com/daystram/reversi/position"

// Move is a (row, col) cell to place a disc on.
type Move struct {
	Row, Col int
}

// NoMove is returned by agents that could not find a legal move.
var NoMove = Move{Row: -1, Col: -1}

func NewMove(pos position.Pos) Move {
	return Move{Row: int(pos.Row()), Col: int(pos.Col())}
}

// ParseMove reads a move in cell notation, e.g. "d3".
func ParseMove(n string) (Move, error) {
	pos, err := position.NewPosFromNotation(n)
	if err != nil {
		return NoMove, err
	}
	return NewMove(pos), nil
}

func (m Move) IsNull() bool {
	return m == NoMove
}

func (m Move) InBounds() bool {
	return position.InBounds(m.Row, m.Col)
}

func (m Move) Pos() position.Pos {
	return position.NewPos(m.Row, m.Col)
}

func (m Move) String() string {
	if !m.InBounds() {
		return "--"
	}
	return m.Pos().Notation()
}
