package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/agent"
	"github.com/daystram/reversi/board"
)

func step(games int, seed uint64) error {
	log.Info().Int("games", games).Uint64("seed", seed).Msg("============ step")
	var (
		timesLegalMoves  []time.Duration
		timesInsertToken []time.Duration
		timesFinished    []time.Duration
		results          [board.StateDraw + 1]int
	)
	r := agent.NewPseudoRand(seed)
	for i := 0; i < games; i++ {
		b, err := board.NewBoard()
		if err != nil {
			return err
		}
		for {
			t1 := time.Now()
			mvs := b.LegalMoves(b.Turn())
			timesLegalMoves = append(timesLegalMoves, time.Since(t1))
			if len(mvs) == 0 {
				return fmt.Errorf("unexpected move exhaustion: state=%s layout=%s", b.State(), b.Layout())
			}
			mv := mvs[r.Intn(len(mvs))]

			t1 = time.Now()
			ok := b.InsertToken(mv)
			timesInsertToken = append(timesInsertToken, time.Since(t1))
			if !ok {
				return fmt.Errorf("generated move %s rejected: layout=%s", mv, b.Layout())
			}

			t1 = time.Now()
			done := b.Finished()
			timesFinished = append(timesFinished, time.Since(t1))
			if done {
				break
			}
		}
		results[b.State()]++
		log.Debug().Int("game", i+1).Str("state", b.State().String()).Str("layout", b.Layout()).Msg("playout finished")
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Printf("black: %d white: %d draw: %d\n", results[board.StateBlackWins], results[board.StateWhiteWins], results[board.StateDraw])
	fmt.Println("legal:", avg(timesLegalMoves))
	fmt.Println("place:", avg(timesInsertToken))
	fmt.Println("final:", avg(timesFinished))
	return nil
}
