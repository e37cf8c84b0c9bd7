package bench

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daystram/reversi/board"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	// Results obtained from https://www.aartbik.com/MISC/reversi.php.
	tests := map[string][]struct {
		depth     int
		wantNodes uint64
	}{
		board.DefaultStartingLayout: {
			{depth: 0, wantNodes: 1},
			{depth: 1, wantNodes: 4},
			{depth: 2, wantNodes: 12},
			{depth: 3, wantNodes: 56},
			{depth: 4, wantNodes: 244},
			{depth: 5, wantNodes: 1_396},
			{depth: 6, wantNodes: 8_200},
			{depth: 7, wantNodes: 55_092},
		},
	}

	for layout, constraints := range tests {
		for _, tt := range constraints {
			layout, tt := layout, tt
			for _, parallel := range []bool{false, true} {
				parallel := parallel
				t.Run(fmt.Sprintf("perft(%d) parallel=%v: %s", tt.depth, parallel, layout), func(t *testing.T) {
					t.Parallel()
					c, err := Perft(tt.depth, layout, parallel, false, nil)
					require.NoError(t, err)
					require.Equal(t, tt.wantNodes, c.Nodes)
					require.Zero(t, c.Passes)
					require.Zero(t, c.Ends)
				})
			}
		}
	}
}

func TestPerftEnds(t *testing.T) {
	t.Parallel()
	// Black's only move wins on the spot.
	c, err := Perft(3, "xoooooo1/8/8/8/8/8/8/8 x", false, false, nil)
	require.NoError(t, err)
	require.Equal(t, Counters{Nodes: 1, Passes: 1, Ends: 1}, c)

	// Black moves twice in a row; White never gets a reply.
	c, err = Perft(2, "xo6/8/8/8/8/8/8/xo6 x", true, false, nil)
	require.NoError(t, err)
	require.Equal(t, Counters{Nodes: 2, Passes: 4}, c)
}

func TestPerftOutput(t *testing.T) {
	t.Parallel()
	out := make(chan string, 16)
	_, err := Perft(2, board.DefaultStartingLayout, false, true, out)
	require.NoError(t, err)
	close(out)
	var lines []string
	for s := range out {
		lines = append(lines, s)
	}
	require.Len(t, lines, 5)
	require.Equal(t, "e3: 3", lines[0])
	require.Contains(t, lines[4], "d=2 nodes=12")
}

func TestPerftInvalidLayout(t *testing.T) {
	t.Parallel()
	_, err := Perft(1, "8/8 x", false, false, nil)
	require.ErrorIs(t, err, board.ErrInvalidPosition)
}
