package agent

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
)

var (
	ErrUnknownAgent = errors.New("unknown agent")
)

// Agent picks a move for the side to move on a board snapshot. It returns
// board.NoMove if it finds nothing to play.
type Agent interface {
	Decide(b board.Board) board.Move
}

const (
	KindFirst  = "first"
	KindRandom = "random"
	KindSearch = "search"
	KindHuman  = "human"
)

// Kinds lists the agent kinds accepted by New.
var Kinds = []string{KindFirst, KindRandom, KindSearch, KindHuman}

type Config struct {
	Seed   uint64
	Engine *engine.EngineConfig
	In     io.Reader
	Out    io.Writer
}

func New(kind string, cfg *Config) (Agent, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	switch kind {
	case KindFirst:
		return FirstLegal{}, nil
	case KindRandom:
		return NewRandom(cfg.Seed), nil
	case KindSearch:
		return engine.NewEngine(cfg.Engine), nil
	case KindHuman:
		in, out := cfg.In, cfg.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return NewHuman(in, out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, kind)
	}
}

// FirstLegal plays the first legal move in row-major order.
type FirstLegal struct{}

func (FirstLegal) Decide(b board.Board) board.Move {
	if mvs := b.LegalMoves(b.Turn()); len(mvs) > 0 {
		return mvs[0]
	}
	return board.NoMove
}

// Random plays a uniformly chosen legal move.
type Random struct {
	r *PseudoRand
}

func NewRandom(seed uint64) *Random {
	return &Random{r: NewPseudoRand(seed)}
}

func (a *Random) Decide(b board.Board) board.Move {
	mvs := b.LegalMoves(b.Turn())
	if len(mvs) == 0 {
		return board.NoMove
	}
	return mvs[a.r.Intn(len(mvs))]
}
