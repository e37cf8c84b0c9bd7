package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/board"
)

// Human reads moves in cell notation, one per line, and asks again until a
// legal move is entered.
type Human struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (h *Human) Decide(b board.Board) board.Move {
	legal := b.LegalMoves(b.Turn())
	if len(legal) == 0 {
		return board.NoMove
	}
	for {
		h.printf("%s to move %s: ", b.Turn(), formatMoves(legal))
		line, err := h.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" && err != nil {
			log.Error().Err(err).Msg("cannot read move")
			return board.NoMove
		}

		mv, perr := board.ParseMove(line)
		switch {
		case perr != nil:
			h.printf("cannot parse %q: %v\n", line, perr)
		case !contains(legal, mv):
			h.printf("%s is not a legal move\n", mv)
		default:
			return mv
		}
		if err != nil {
			log.Error().Err(err).Msg("cannot read move")
			return board.NoMove
		}
	}
}

func (h *Human) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(h.out, format, a...)
}

func formatMoves(mvs []board.Move) string {
	builder := strings.Builder{}
	_, _ = builder.WriteRune('[')
	for i, mv := range mvs {
		_, _ = builder.WriteString(mv.String())
		if i < len(mvs)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	_, _ = builder.WriteRune(']')
	return builder.String()
}

func contains(mvs []board.Move, mv board.Move) bool {
	for _, m := range mvs {
		if m == mv {
			return true
		}
	}
	return false
}
