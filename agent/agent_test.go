package agent

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
)

func mustBoard(t *testing.T, layout string) *board.Board {
	t.Helper()
	b, err := board.NewBoard(board.WithLayout(layout))
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	t.Parallel()
	logger := zerolog.Nop()
	cfg := &Config{
		Seed:   7,
		Engine: &engine.EngineConfig{MaxDepth: 2, Logger: &logger},
		In:     strings.NewReader(""),
		Out:    &bytes.Buffer{},
	}
	for _, kind := range Kinds {
		a, err := New(kind, cfg)
		require.NoError(t, err, kind)
		require.NotNil(t, a, kind)
	}

	_, err := New("oracle", cfg)
	require.ErrorIs(t, err, ErrUnknownAgent)
}

func TestAgentsPlayLegalMoves(t *testing.T) {
	t.Parallel()
	logger := zerolog.Nop()
	agents := map[string]Agent{
		KindFirst:  FirstLegal{},
		KindRandom: NewRandom(42),
		KindSearch: engine.NewEngine(&engine.EngineConfig{MaxDepth: 2, Logger: &logger}),
	}
	for name, a := range agents {
		name, a := name, a
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard()
			require.NoError(t, err)
			for !b.Finished() {
				mv := a.Decide(*b)
				require.Contains(t, b.LegalMoves(b.Turn()), mv)
				require.True(t, b.InsertToken(mv))
			}
			require.Equal(t, board.NoMove, a.Decide(*b))
		})
	}
}

func TestFirstLegal(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	require.NoError(t, err)
	require.Equal(t, board.Move{Row: 2, Col: 4}, FirstLegal{}.Decide(*b))
	require.Equal(t, board.NoMove, FirstLegal{}.Decide(*mustBoard(t, "xxx5/8/8/8/8/8/8/8 x")))
}

func TestRandomIsSeeded(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	require.NoError(t, err)
	a1, a2 := NewRandom(3), NewRandom(3)
	for i := 0; i < 16; i++ {
		require.Equal(t, a1.Decide(*b), a2.Decide(*b))
	}
}

func TestPseudoRandZeroSeed(t *testing.T) {
	t.Parallel()
	r := NewPseudoRand(0)
	require.NotZero(t, r.Uint64())
	for i := 0; i < 100; i++ {
		n := r.Intn(5)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 5)
	}
}

func TestHuman(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  board.Move
	}{
		{name: "legal", input: "e3\n", want: board.Move{Row: 2, Col: 4}},
		{name: "no trailing newline", input: "f4", want: board.Move{Row: 3, Col: 5}},
		{name: "retry after illegal", input: "a1\nzz\nc5\n", want: board.Move{Row: 4, Col: 2}},
		{name: "eof", input: "a1\n", want: board.NoMove},
		{name: "empty", input: "", want: board.NoMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard()
			require.NoError(t, err)
			out := &bytes.Buffer{}
			h := NewHuman(strings.NewReader(tt.input), out)
			require.Equal(t, tt.want, h.Decide(*b))
			require.Contains(t, out.String(), "Black to move [e3 f4 c5 d6]")
		})
	}
}
