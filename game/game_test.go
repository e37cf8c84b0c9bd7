package game

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/reversi/agent"
	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
)

type fixedAgent struct {
	mv board.Move
}

func (a fixedAgent) Decide(board.Board) board.Move {
	return a.mv
}

func newTestGame(t *testing.T, black, white agent.Agent, layout string) *Game {
	t.Helper()
	logger := zerolog.Nop()
	g, err := NewGame(&Config{
		Black:  black,
		White:  white,
		Layout: layout,
		Logger: &logger,
	})
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	t.Parallel()
	_, err := NewGame(nil)
	require.ErrorIs(t, err, ErrMissingAgent)
	_, err = NewGame(&Config{Black: agent.FirstLegal{}})
	require.ErrorIs(t, err, ErrMissingAgent)
	_, err = NewGame(&Config{Black: agent.FirstLegal{}, White: agent.FirstLegal{}, Layout: "8/8 x"})
	require.ErrorIs(t, err, board.ErrInvalidPosition)
}

func TestRun(t *testing.T) {
	t.Parallel()
	logger := zerolog.Nop()
	search := engine.NewEngine(&engine.EngineConfig{MaxDepth: 2, Logger: &logger})
	g := newTestGame(t, agent.FirstLegal{}, search, "")

	var applied int
	g.onMove = func(b *board.Board, p Play) {
		applied++
		require.NotEqual(t, board.SideNone, p.Side)
	}
	res, err := g.Run(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, board.StateRunning, res.State)
	require.True(t, g.Board().Finished())
	require.Equal(t, applied, len(res.History))
	require.LessOrEqual(t, res.Black+res.White, int(board.TotalCells))
	require.Equal(t, res.Black+res.White, len(res.History)+4)

	switch {
	case res.Black > res.White:
		require.Equal(t, board.SideBlack, res.Winner())
	case res.White > res.Black:
		require.Equal(t, board.SideWhite, res.Winner())
	default:
		require.Equal(t, board.StateDraw, res.State)
	}
}

func TestRunPass(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, agent.FirstLegal{}, agent.FirstLegal{}, "xo6/8/8/8/8/8/8/xo6 x")
	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b:c1 b:c8", FormatHistory(res.History))
	assert.Equal(t, 6, res.Black)
	assert.Equal(t, 0, res.White)
	assert.Equal(t, board.StateBlackWins, res.State)
	assert.Equal(t, "Black wins 6-0", res.String())
}

func TestRunDraw(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, agent.FirstLegal{}, agent.FirstLegal{},
		"xxxxxxxx/xxxxxxxx/xxxxxxxx/xxxxxxxx/oooooooo/oooooooo/oooooooo/oooooooo x")
	res, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, res.History)
	require.Equal(t, board.StateDraw, res.State)
	require.Equal(t, board.SideNone, res.Winner())
	require.Equal(t, "draw 32-32", res.String())
}

func TestRunIllegalMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		mv   board.Move
	}{
		{name: "no move", mv: board.NoMove},
		{name: "occupied", mv: board.Move{Row: 3, Col: 3}},
		{name: "no capture", mv: board.Move{Row: 0, Col: 0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newTestGame(t, fixedAgent{mv: tt.mv}, agent.FirstLegal{}, "")
			_, err := g.Run(context.Background())
			require.ErrorIs(t, err, ErrIllegalMove)
			require.Contains(t, err.Error(), "Black played "+tt.mv.String())
			require.Equal(t, board.DefaultStartingLayout, g.Board().Layout())
		})
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := newTestGame(t, agent.FirstLegal{}, agent.FirstLegal{}, "")
	res, err := g.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, board.StateRunning, res.State)
}

func TestReset(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, agent.FirstLegal{}, agent.FirstLegal{}, "")
	first, err := g.Run(context.Background())
	require.NoError(t, err)
	require.NotZero(t, g.Board().Cache().Len())

	cache := g.Board().Cache()
	require.NoError(t, g.Reset())
	require.Same(t, cache, g.Board().Cache())
	require.Zero(t, g.Board().Cache().Len())
	require.Equal(t, board.DefaultStartingLayout, g.Board().Layout())

	second, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRunStuckSideToMove(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, agent.FirstLegal{}, agent.FirstLegal{}, "ox6/8/8/8/8/8/8/8 x")
	require.Equal(t, board.SideWhite, g.Board().Turn())
	res, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "w:c1", FormatHistory(res.History))
	assert.Equal(t, board.StateWhiteWins, res.State)
	assert.Equal(t, "White wins 0-3", res.String())
}

func TestPlayString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "b:e3", Play{Side: board.SideBlack, Move: board.Move{Row: 2, Col: 4}}.String())
	assert.Equal(t, "w:--", Play{Side: board.SideWhite, Move: board.NoMove}.String())
	assert.Equal(t, "-:--", Play{Side: board.SideNone, Move: board.NoMove}.String())
}
