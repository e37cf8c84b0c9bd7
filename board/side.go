package board

// Side identifies the owner of a disc. SideNone marks an empty cell.
type Side uint8

const (
	SideNone Side = iota
	SideBlack
	SideWhite
)

func (s Side) String() string {
	switch s {
	case SideBlack:
		return "Black"
	case SideWhite:
		return "White"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideBlack:
		return SideWhite
	case SideWhite:
		return SideBlack
	default:
		return SideNone
	}
}

// Symbol returns the layout symbol of the side.
func (s Side) Symbol() rune {
	switch s {
	case SideBlack:
		return 'x'
	case SideWhite:
		return 'o'
	default:
		return '.'
	}
}

// SymbolUnicode returns the disc glyph used by Draw.
func (s Side) SymbolUnicode() string {
	switch s {
	case SideBlack:
		return "●"
	case SideWhite:
		return "○"
	default:
		return " "
	}
}
