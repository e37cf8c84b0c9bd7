package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/reversi/board"
)

// Counters accumulates perft leaf statistics.
type Counters struct {
	Nodes  uint64 // leaves at the requested depth or earlier game ends
	Passes uint64 // moves after which the same side moved again
	Ends   uint64 // games finished before the requested depth
}

func Perft(depth int, layout string, parallel, verbose bool, out chan string) (Counters, error) {
	var c Counters
	b, err := board.NewBoard(
		board.WithLayout(layout),
	)
	if err != nil {
		return c, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &c)
	end := time.Now()

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s passes=%d ends=%d (%.3fs elapsed)",
				depth, c.Nodes, int(float64(c.Nodes)/(end.Sub(start).Seconds()+1e-9)), c.Passes, c.Ends, end.Sub(start).Seconds())
	}
	return c, nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, c *Counters) uint64

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}
	mvs := b.LegalMoves(b.Turn())
	if len(mvs) == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		atomic.AddUint64(&c.Ends, 1)
		return 1
	}

	var sum uint64
	for _, mv := range mvs {
		bb := *b
		bb.InsertToken(mv)
		if bb.Turn() == b.Turn() {
			atomic.AddUint64(&c.Passes, 1)
		}
		child := runPerft(&bb, d-1, false, verbose, out, c)
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv, child)
		}
		sum += child
	}
	return sum
}

// runPerftParallel explores every root move in its own goroutine. Each
// goroutine owns a fresh move cache since caches are not safe to share.
func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, c *Counters) uint64 {
	mvs := b.LegalMoves(b.Turn())
	if d == 0 || len(mvs) == 0 {
		return runPerft(b, d, root, verbose, out, c)
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range mvs {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := b.WithCache(board.NewMoveCache())
			bb.InsertToken(mv)
			if bb.Turn() == b.Turn() {
				atomic.AddUint64(&c.Passes, 1)
			}
			child := runPerft(bb, d-1, false, verbose, out, c)
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv, child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
