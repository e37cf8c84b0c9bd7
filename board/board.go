package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/reversi/position"
)

var (
	ErrInvalidPosition = errors.New("invalid position")

	drawCellBackground = [2]color.Attribute{color.BgGreen, color.BgHiGreen}
	drawDiscForeground = [2 + 1]color.Attribute{
		SideNone:  color.FgBlack,
		SideBlack: color.FgBlack,
		SideWhite: color.FgHiWhite,
	}
	drawLegend = color.New(color.Bold)
)

// Board is an 8x8 Reversi grid packed into two masks. Bit i of occupied is
// set iff cell i holds a disc; bit i of color then says whose disc it is
// (0 for Black, 1 for White). Boards are values: copying one yields an
// independent position sharing the same MoveCache.
type Board struct {
	// grid data
	occupied bitmap
	color    bitmap

	// meta
	turn Side

	// cache
	cache *MoveCache
}

type boardConfig struct {
	layout string
	cache  *MoveCache
}

type BoardOption func(*boardConfig)

// WithLayout sets up the board from a layout string instead of the standard
// starting position.
func WithLayout(layout string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.layout = layout
	}
}

// WithMoveCache attaches c instead of a fresh cache, letting several boards of
// one session share legal move results.
func WithMoveCache(c *MoveCache) BoardOption {
	return func(cfg *boardConfig) {
		cfg.cache = c
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.cache == nil {
		cfg.cache = NewMoveCache()
	}

	b := &Board{
		occupied: startingOccupied,
		color:    startingColor,
		turn:     SideBlack,
		cache:    cfg.cache,
	}
	if cfg.layout != "" {
		if err := UnmarshalLayout(cfg.layout, b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

// Cache returns the move cache attached to the board.
func (b *Board) Cache() *MoveCache {
	return b.cache
}

// WithCache returns a copy of the board attached to c. Boards explored from
// different goroutines must not share a cache.
func (b *Board) WithCache(c *MoveCache) *Board {
	bb := *b
	bb.cache = c
	return &bb
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// Get returns the owner of the cell, or SideNone if it is empty or out of range.
func (b *Board) Get(row, col int) Side {
	if !position.InBounds(row, col) {
		return SideNone
	}
	return b.getByPos(position.NewPos(row, col))
}

func (b *Board) getByPos(pos position.Pos) Side {
	mask := maskCell[pos]
	switch {
	case b.occupied&mask == 0:
		return SideNone
	case b.color&mask == 0:
		return SideBlack
	default:
		return SideWhite
	}
}

// set writes a cell without any legality check.
func (b *Board) set(row, col int, s Side) {
	pos := position.NewPos(row, col)
	switch s {
	case SideBlack:
		b.occupied.Set(pos)
		b.color.Unset(pos)
	case SideWhite:
		b.occupied.Set(pos)
		b.color.Set(pos)
	default:
		b.occupied.Unset(pos)
		b.color.Unset(pos)
	}
}

// discs returns the discs of s and of its opponent.
func (b *Board) discs(s Side) (bitmap, bitmap) {
	black, white := b.occupied&^b.color, b.occupied&b.color
	if s == SideWhite {
		return white, black
	}
	return black, white
}

// LegalMoves returns every cell s could place on, in row-major order. The
// result is shared with the move cache and must not be modified.
func (b *Board) LegalMoves(s Side) []Move {
	if b.cache == nil {
		return b.legalMovesUncached(s)
	}
	f := b.Fingerprint(s)
	if mvs, ok := b.cache.Get(f); ok {
		return mvs
	}
	mvs := b.legalMovesUncached(s)
	b.cache.Set(f, mvs)
	return mvs
}

func (b *Board) legalMovesUncached(s Side) []Move {
	legal := b.legalBitmap(s)
	mvs := make([]Move, 0, legal.BitCount())
	for legal != 0 {
		pos := legal.LS1B()
		mvs = append(mvs, NewMove(pos))
		legal.Unset(pos)
	}
	return mvs
}

func (b *Board) legalBitmap(s Side) bitmap {
	if s != SideBlack && s != SideWhite {
		return 0
	}
	own, opp := b.discs(s)
	var legal bitmap
	for empty := ^b.occupied; empty != 0; {
		pos := empty.LS1B()
		empty.Unset(pos)
		for _, shift := range directions {
			if captureRun(maskCell[pos], own, opp, shift) != 0 {
				legal.Set(pos)
				break
			}
		}
	}
	return legal
}

// Finished reports whether neither side can move.
func (b *Board) Finished() bool {
	return len(b.LegalMoves(SideBlack)) == 0 && len(b.LegalMoves(SideWhite)) == 0
}

// InsertToken plays mv for the side to move. It returns false without touching
// the board if the cell is out of range, occupied, or captures nothing. The
// turn passes to the opponent only if they have a reply.
func (b *Board) InsertToken(mv Move) bool {
	if !mv.InBounds() {
		return false
	}
	pos := mv.Pos()
	cell := maskCell[pos]
	if b.occupied&cell != 0 {
		return false
	}

	own, opp := b.discs(b.turn)
	var flips bitmap
	for _, shift := range directions {
		flips |= captureRun(cell, own, opp, shift)
	}
	if flips == 0 {
		return false
	}

	b.occupied |= cell
	if b.turn == SideWhite {
		b.color |= cell | flips
	} else {
		b.color &^= cell | flips
	}

	if len(b.LegalMoves(b.turn.Opposite())) > 0 {
		b.turn = b.turn.Opposite()
	}
	return true
}

// CountTokens returns the number of Black and White discs.
func (b *Board) CountTokens() (int, int) {
	black, white := b.discs(SideBlack)
	return black.BitCount(), white.BitCount()
}

func (b *Board) Fingerprint(s Side) Fingerprint {
	return Fingerprint{
		Occupied: uint64(b.occupied),
		Color:    uint64(b.color),
		Player:   s,
	}
}

func (b *Board) State() State {
	if !b.Finished() {
		return StateRunning
	}
	black, white := b.CountTokens()
	switch {
	case black > white:
		return StateBlackWins
	case white > black:
		return StateWhiteWins
	default:
		return StateDraw
	}
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := position.Pos(0); row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", row.NotationComponentRow()))
		for col := position.Pos(0); col < Width; col++ {
			sym := b.getByPos(row*Width + col).Symbol()
			if sym == '.' {
				sym = ' '
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %c |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := position.Pos(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", col.NotationComponentCol()))
	}
	return builder.String()
}

// DumpLegalMoves renders the legal move cells of the side to move.
func (b *Board) DumpLegalMoves() string {
	return b.legalBitmap(b.turn).Dump('*')
}

// Draw renders the board with terminal colors, marking the legal moves of the
// side to move.
func (b *Board) Draw() string {
	legal := b.legalBitmap(b.turn)
	builder := strings.Builder{}
	for row := position.Pos(0); row < Height; row++ {
		_, _ = builder.WriteString(drawLegend.Sprintf(" %s ", row.NotationComponentRow()))
		for col := position.Pos(0); col < Width; col++ {
			pos := row*Width + col
			s := b.getByPos(pos)
			sym := s.SymbolUnicode()
			if s == SideNone && legal&maskCell[pos] != 0 {
				sym = "·"
			}
			cell := color.New(drawCellBackground[(row%2)^(col%2)], drawDiscForeground[s], color.Bold)
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := position.Pos(0); col < Width; col++ {
		_, _ = builder.WriteString(drawLegend.Sprintf(" %s ", col.NotationComponentCol()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	black, white := b.CountTokens()
	hits, misses := 0, 0
	if b.cache != nil {
		hits, misses = b.cache.Stats()
	}
	return fmt.Sprintf("turn: %s\ndisc: %d-%d\nstat: %s\ncach: %d hits %d misses", b.turn, black, white, b.State(), hits, misses)
}
