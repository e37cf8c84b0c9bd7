package position

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok top left",
			notation: "a1",
			want:     Pos(0),
		},
		{
			name:     "ok bottom right",
			notation: "h8",
			want:     Pos(63),
		},
		{
			name:     "ok center",
			notation: "e4",
			want:     Pos(28),
		},
		{
			name:     "ok uppercase column",
			notation: "D3",
			want:     Pos(19),
		},
		{
			name:     "bad empty",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad short",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad column",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad row 9",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad row 0",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, NewPos(int(got.Row()), int(got.Col())))
		})
	}
}

func TestPosNotation(t *testing.T) {
	t.Parallel()
	for p := Pos(0); p < TotalCells; p++ {
		got, err := NewPosFromNotation(p.Notation())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	require.Empty(t, Pos(-1).Notation())
	require.Empty(t, TotalCells.Notation())
}

func TestInBounds(t *testing.T) {
	t.Parallel()
	require.True(t, InBounds(0, 0))
	require.True(t, InBounds(7, 7))
	require.False(t, InBounds(-1, 0))
	require.False(t, InBounds(0, 8))
	require.False(t, InBounds(8, 3))
}
