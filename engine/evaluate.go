package engine

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/daystram/reversi/board"
)

const (
	weightMoves   = 6  // mobility
	weightDiscs   = 4  // disc difference
	weightCorners = 10 // corners
)

var (
	// ScoreWin and ScoreLoss are returned for finished games.
	ScoreWin  = math.MaxFloat64
	ScoreLoss = -math.MaxFloat64

	scoreInfinite = math.Inf(1)
)

// Evaluate scores b from the perspective of player. Finished games score
// ScoreWin if player holds more discs and ScoreLoss otherwise.
func Evaluate(b *board.Board, player board.Side) float64 {
	enemy := player.Opposite()
	playerDiscs, enemyDiscs := discs(b, player)
	if b.Finished() {
		if playerDiscs > enemyDiscs {
			return ScoreWin
		}
		return ScoreLoss
	}

	moveAdvantage := ratio(len(b.LegalMoves(player)), len(b.LegalMoves(enemy)))
	discAdvantage := ratio(playerDiscs, enemyDiscs)
	return weightMoves*moveAdvantage + weightDiscs*discAdvantage + weightCorners*cornerAdvantage(b, player)
}

func discs(b *board.Board, player board.Side) (int, int) {
	black, white := b.CountTokens()
	if player == board.SideWhite {
		return white, black
	}
	return black, white
}

func cornerAdvantage(b *board.Board, player board.Side) float64 {
	var own, opp int
	for _, pos := range board.Corners {
		switch b.Get(int(pos.Row()), int(pos.Col())) {
		case player:
			own++
		case player.Opposite():
			opp++
		}
	}
	if own+opp == 0 {
		return 0
	}
	return float64(own-opp) / float64(own+opp+1)
}

// ratio returns (a-b)/(a+b), or 0 when both are zero.
func ratio[T constraints.Integer](a, b T) float64 {
	if a+b == 0 {
		return 0
	}
	return (float64(a) - float64(b)) / float64(a+b)
}
