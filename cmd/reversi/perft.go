package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/bench"
)

func perft(depth int, layout string, parallel bool) error {
	log.Info().Int("depth", depth).Bool("parallel", parallel).Msg("============ perft")

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Println(s)
		}
	}()

	_, err := bench.Perft(depth, layout, parallel, true, out)
	close(out)
	<-done
	return err
}
