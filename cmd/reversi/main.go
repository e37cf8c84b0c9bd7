package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/agent"
	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	debug   = flag.Bool("debug", false, "enable debug logs")
	noColor = flag.Bool("nocolor", false, "disable colored output")
	layout  = flag.String("position", board.DefaultStartingLayout, "starting layout, e.g. \"8/8/8/3xo3/3ox3/8/8/8 x\"")
	seed    = flag.Uint64("seed", 1, "seed for random agents and step mode")

	blackAgent = flag.String("black", agent.KindFirst, "agent playing Black: first, random, search or human")
	whiteAgent = flag.String("white", agent.KindSearch, "agent playing White: first, random, search or human")

	searchMaxDepth = flag.Int("search.maxdepth", engine.DefaultMaxDepth, "search max depth in plies")
	searchNoMemo   = flag.Bool("search.nomemo", false, "disable the search memo")
	searchVerify   = flag.Bool("search.verify", false, "cross-check every search decision against full-width minimax")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepGames = flag.Int("step.games", 100, "random games to time in step mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 6, "perft depth")
	perftParallel = flag.Bool("perft.parallel", true, "split perft root moves across goroutines")
)

func main() {
	flag.Parse()
	setupLogger()

	if *profile {
		runProfiler()
	}

	err := realMain()
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func setupLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: *noColor})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *noColor {
		color.NoColor = true
	}
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Info().Msgf("starting pprof endpoint: http://%s/debug/pprof", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain() error {
	if *movegenRun {
		return movegen(*layout, *movegenDraw)
	}
	if *stepRun {
		return step(*stepGames, *seed)
	}
	if *perftRun {
		return perft(*perftDepth, *layout, *perftParallel)
	}
	return play(*layout)
}
