package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/agent"
	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
	"github.com/daystram/reversi/game"
)

var (
	bannerWin  = color.New(color.FgHiGreen, color.Bold)
	bannerDraw = color.New(color.FgHiYellow, color.Bold)
)

func play(layout string) error {
	black, err := newAgent(*blackAgent, *seed)
	if err != nil {
		return err
	}
	white, err := newAgent(*whiteAgent, *seed+1)
	if err != nil {
		return err
	}

	g, err := game.NewGame(&game.Config{
		Black:  black,
		White:  white,
		Layout: layout,
		OnMove: func(b *board.Board, p game.Play) {
			fmt.Printf("\n>>> %s: %s\n", p.Side, p.Move)
			fmt.Println(b.Layout())
			fmt.Println(b.Draw())
		},
	})
	if err != nil {
		return err
	}
	fmt.Println(g.Board().Draw())
	fmt.Println(g.Board().DebugString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := g.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	if res.State.IsDraw() {
		_, _ = bannerDraw.Printf("=============== draw: %d-%d\n", res.Black, res.White)
	} else {
		_, _ = bannerWin.Printf("=============== %s wins: %d-%d\n", res.Winner(), res.Black, res.White)
	}
	fmt.Println(game.FormatHistory(res.History))
	return nil
}

func newAgent(kind string, seed uint64) (agent.Agent, error) {
	a, err := agent.New(kind, &agent.Config{
		Seed: seed,
		Engine: &engine.EngineConfig{
			MaxDepth:    *searchMaxDepth,
			DisableMemo: *searchNoMemo,
		},
	})
	if err != nil {
		return nil, err
	}
	if e, ok := a.(*engine.Engine); ok && *searchVerify {
		return &verifiedEngine{
			Engine: e,
			ref:    engine.NewEngine(&engine.EngineConfig{MaxDepth: *searchMaxDepth, DisableMemo: true}),
		}, nil
	}
	return a, nil
}

// verifiedEngine checks every decision against a full-width minimax of the
// same depth.
type verifiedEngine struct {
	*engine.Engine
	ref *engine.Engine
}

func (v *verifiedEngine) Decide(b board.Board) board.Move {
	score, mv := v.Search(b)
	want := v.ref.Minimax(b)
	ev := log.Debug()
	if score != want {
		ev = log.Warn()
	}
	ev.Str("move", mv.String()).
		Float64("score", score).
		Float64("minimax", want).
		Uint64("nodes", v.Stats().Nodes).
		Uint64("minimax_nodes", v.ref.Stats().Nodes).
		Msg("verified decision")
	return mv
}
