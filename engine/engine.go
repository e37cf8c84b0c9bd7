package engine

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/reversi/board"
)

const (
	DefaultMaxDepth = 7
)

type EngineConfig struct {
	// MaxDepth bounds the search in plies. Zero means DefaultMaxDepth.
	MaxDepth int

	// DisableMemo turns off the per-decision memo of child values.
	DisableMemo bool

	// Logger receives decision stats at debug level. Nil means the global logger.
	Logger *zerolog.Logger
}

// Stats describes the work done by the last decision.
type Stats struct {
	Nodes       uint64
	Evaluations uint64
	Memo        MemoStats
	Elapsed     time.Duration
}

// Engine decides moves with a depth-bounded minimax search with alpha-beta
// pruning. Every node is scored from the perspective of the side that asked
// for the decision, so the tree alternates between a maximizing and a
// minimizing routine instead of negating scores.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	maxDepth    int
	disableMemo bool
	logger      zerolog.Logger

	player board.Side
	enemy  board.Side
	stats  Stats
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}
	e := &Engine{
		maxDepth:    cfg.MaxDepth,
		disableMemo: cfg.DisableMemo,
		logger:      log.Logger,
	}
	if e.maxDepth <= 0 {
		e.maxDepth = DefaultMaxDepth
	}
	if cfg.Logger != nil {
		e.logger = *cfg.Logger
	}
	return e
}

func (e *Engine) MaxDepth() int {
	return e.maxDepth
}

// Stats returns the stats of the last decision.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Decide returns the best move for the side to move on b, or board.NoMove if
// that side has no legal move.
func (e *Engine) Decide(b board.Board) board.Move {
	score, mv := e.Search(b)

	nps := float64(e.stats.Nodes) / (e.stats.Elapsed + 1).Seconds()
	e.logger.Debug().
		Str("side", e.player.String()).
		Str("move", mv.String()).
		Float64("score", score).
		Int("depth", e.maxDepth).
		Str("nodes", message.NewPrinter(language.English).Sprintf("%d (%.0fn/s)", e.stats.Nodes, nps)).
		Uint64("evals", e.stats.Evaluations).
		Uint64("memo_hits", e.stats.Memo.Hits).
		Uint64("memo_writes", e.stats.Memo.Writes).
		Dur("elapsed", e.stats.Elapsed).
		Msg("decision")
	return mv
}

// Search runs the alpha-beta search for the side to move on b and returns the
// root value together with the move attached to it.
func (e *Engine) Search(b board.Board) (float64, board.Move) {
	e.begin(b)
	start := time.Now()
	defer func() { e.stats.Elapsed = time.Since(start) }()

	var m *memo
	if !e.disableMemo {
		m = newMemo(&e.stats.Memo)
	}
	return e.maxValue(&b, -scoreInfinite, scoreInfinite, 0, m)
}

// Minimax runs a full-width search without pruning or memo for the side to
// move on b. It visits the same tree as Search and must return the same value.
func (e *Engine) Minimax(b board.Board) float64 {
	e.begin(b)
	start := time.Now()
	defer func() { e.stats.Elapsed = time.Since(start) }()

	return e.minimax(&b, 0, true)
}

func (e *Engine) begin(b board.Board) {
	e.player = b.Turn()
	e.enemy = e.player.Opposite()
	e.stats = Stats{}
}

// maxValue scores player's replies. It stops at the depth bound or when
// player has no move.
func (e *Engine) maxValue(b *board.Board, alpha, beta float64, depth int, m *memo) (float64, board.Move) {
	e.stats.Nodes++

	mvs := b.LegalMoves(e.player)
	if depth == e.maxDepth || len(mvs) == 0 {
		return e.evaluate(b), board.NoMove
	}

	local := m.descend()
	v := -scoreInfinite
	bestMove := mvs[0]
	for _, mv := range mvs {
		bb := *b
		bb.InsertToken(mv)
		f := bb.Fingerprint(e.player)
		value, ok := local.get(f)
		if !ok {
			value = e.minValue(&bb, alpha, beta, depth+1, local)
			local.set(f, value)
		}
		if value > v {
			v = value
			bestMove = mv
			alpha = max(alpha, v)
		}
		if v >= beta {
			break // beta cutoff
		}
	}
	return v, bestMove
}

// minValue scores enemy's replies. Only the depth bound stops it: a node where
// enemy has no move scores +Inf.
func (e *Engine) minValue(b *board.Board, alpha, beta float64, depth int, m *memo) float64 {
	e.stats.Nodes++

	if depth == e.maxDepth {
		return e.evaluate(b)
	}

	local := m.descend()
	v := scoreInfinite
	for _, mv := range b.LegalMoves(e.enemy) {
		bb := *b
		bb.InsertToken(mv)
		f := bb.Fingerprint(e.enemy)
		value, ok := local.get(f)
		if !ok {
			value, _ = e.maxValue(&bb, alpha, beta, depth+1, local)
			local.set(f, value)
		}
		if value < v {
			v = value
			beta = min(beta, v)
		}
		if v <= alpha {
			break // alpha cutoff
		}
	}
	return v
}

func (e *Engine) minimax(b *board.Board, depth int, maximize bool) float64 {
	e.stats.Nodes++

	if maximize {
		mvs := b.LegalMoves(e.player)
		if depth == e.maxDepth || len(mvs) == 0 {
			return e.evaluate(b)
		}
		v := -scoreInfinite
		for _, mv := range mvs {
			bb := *b
			bb.InsertToken(mv)
			v = max(v, e.minimax(&bb, depth+1, false))
		}
		return v
	}

	if depth == e.maxDepth {
		return e.evaluate(b)
	}
	v := scoreInfinite
	for _, mv := range b.LegalMoves(e.enemy) {
		bb := *b
		bb.InsertToken(mv)
		v = min(v, e.minimax(&bb, depth+1, true))
	}
	return v
}

func (e *Engine) evaluate(b *board.Board) float64 {
	e.stats.Evaluations++
	return Evaluate(b, e.player)
}
