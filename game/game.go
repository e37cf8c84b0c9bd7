package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/agent"
	"github.com/daystram/reversi/board"
)

var (
	// ErrIllegalMove is returned when an agent proposes a move the board rejects.
	ErrIllegalMove = errors.New("illegal move")

	ErrMissingAgent = errors.New("missing agent")
)

type Config struct {
	Black agent.Agent
	White agent.Agent

	// Layout is the starting layout; empty means the standard start.
	Layout string

	// OnMove is called after every applied move.
	OnMove func(b *board.Board, p Play)

	Logger *zerolog.Logger
}

// Play is one applied move.
type Play struct {
	Side board.Side
	Move board.Move
}

func (p Play) String() string {
	name := p.Side.String()
	if name == "" {
		return "-:" + p.Move.String()
	}
	return strings.ToLower(name[:1]) + ":" + p.Move.String()
}

type Result struct {
	Black, White int
	State        board.State
	History      []Play
}

func (r Result) Winner() board.Side {
	return r.State.Winner()
}

func (r Result) String() string {
	switch r.State {
	case board.StateDraw:
		return fmt.Sprintf("draw %d-%d", r.Black, r.White)
	case board.StateBlackWins, board.StateWhiteWins:
		return fmt.Sprintf("%s wins %d-%d", r.Winner(), r.Black, r.White)
	default:
		return fmt.Sprintf("unfinished %d-%d", r.Black, r.White)
	}
}

// FormatHistory renders the plays, e.g. "b:e3 w:f5 b:f6".
func FormatHistory(plays []Play) string {
	builder := strings.Builder{}
	for i, p := range plays {
		_, _ = builder.WriteString(p.String())
		if i < len(plays)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	return builder.String()
}

// Game drives two agents on one board. The board's move cache lives as long
// as the game and is cleared by Reset.
type Game struct {
	layout  string
	board   *board.Board
	agents  [2 + 1]agent.Agent
	history []Play
	onMove  func(b *board.Board, p Play)
	logger  zerolog.Logger
}

func NewGame(cfg *Config) (*Game, error) {
	if cfg == nil || cfg.Black == nil || cfg.White == nil {
		return nil, ErrMissingAgent
	}
	g := &Game{
		layout: cfg.Layout,
		onMove: cfg.OnMove,
		logger: log.Logger,
	}
	g.agents[board.SideBlack] = cfg.Black
	g.agents[board.SideWhite] = cfg.White
	if cfg.Logger != nil {
		g.logger = *cfg.Logger
	}

	b, err := board.NewBoard(board.WithLayout(cfg.Layout))
	if err != nil {
		return nil, err
	}
	g.board = b
	return g, nil
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Reset restores the starting layout and drops the move cache.
func (g *Game) Reset() error {
	cache := g.board.Cache()
	cache.Reset()
	b, err := board.NewBoard(board.WithLayout(g.layout), board.WithMoveCache(cache))
	if err != nil {
		return err
	}
	g.board = b
	g.history = nil
	return nil
}

func (g *Game) result() Result {
	black, white := g.board.CountTokens()
	return Result{
		Black:   black,
		White:   white,
		State:   g.board.State(),
		History: g.history,
	}
}

// Run plays until neither side can move. ctx is checked between moves only.
func (g *Game) Run(ctx context.Context) (Result, error) {
	g.logger.Info().Str("layout", g.board.Layout()).Msg("game started")
	for g.board.State().IsRunning() {
		if err := ctx.Err(); err != nil {
			return g.result(), err
		}

		side := g.board.Turn()
		mv := g.agents[side].Decide(*g.board)
		if mv.IsNull() {
			g.logger.Error().Str("side", side.String()).Msg("agent returned no move")
			return g.result(), fmt.Errorf("%w: %s played %s", ErrIllegalMove, side, mv)
		}
		if !g.board.InsertToken(mv) {
			g.logger.Error().Str("side", side.String()).Str("move", mv.String()).Msg("agent chose an invalid move")
			return g.result(), fmt.Errorf("%w: %s played %s", ErrIllegalMove, side, mv)
		}

		p := Play{Side: side, Move: mv}
		g.history = append(g.history, p)
		black, white := g.board.CountTokens()
		g.logger.Debug().
			Int("ply", len(g.history)).
			Str("side", side.String()).
			Str("move", mv.String()).
			Int("black", black).
			Int("white", white).
			Msg("move applied")
		if g.onMove != nil {
			g.onMove(g.board, p)
		}
	}

	res := g.result()
	hits, misses := g.board.Cache().Stats()
	g.logger.Info().
		Str("result", res.String()).
		Int("plies", len(res.History)).
		Int("cache_entries", g.board.Cache().Len()).
		Int("cache_hits", hits).
		Int("cache_misses", misses).
		Msg("game finished")
	return res, nil
}
