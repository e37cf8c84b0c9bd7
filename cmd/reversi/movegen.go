package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/board"
)

func movegen(layout string, draw bool) error {
	log.Info().Msg("============ movegen")
	b, err := board.NewBoard(board.WithLayout(layout))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())
	fmt.Println(b.DumpLegalMoves())
	dumpMoves(b)

	if draw {
		for _, mv := range b.LegalMoves(b.Turn()) {
			bb := *b
			if !bb.InsertToken(mv) {
				return fmt.Errorf("generated move %s rejected", mv)
			}
			fmt.Println(mv)
			fmt.Println(bb.Draw())
			fmt.Println(bb.Layout())
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.LegalMoves(b.Turn())
	black, white := b.CountTokens()
	for i, mv := range mvs {
		bb := *b
		bb.InsertToken(mv)
		nextBlack, nextWhite := bb.CountTokens()
		flips := nextBlack - black
		if b.Turn() == board.SideWhite {
			flips = nextWhite - white
		}
		fmt.Printf("option %*d: [%s] (%d,%d) flips=%d next=%s\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, mv.Row, mv.Col, flips-1, bb.Turn())
	}
}
