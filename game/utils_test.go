package game

import (
	"testing"

	"github.com/minaorangina/pyramid/deck"
	"github.com/stretchr/testify/require"
)

func card(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.Card{Rank: rank, Suit: suit}
}

func faceUp(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.Card{Rank: rank, Suit: suit, Visible: true}
}

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// stagedGame builds a game in progress where it is Rick's turn.
// Cells not listed in board stay empty.
func stagedGame(t *testing.T, board map[Position]deck.Card, reserve []deck.Card, drawPile []deck.Card) *Game {
	t.Helper()

	table := NewTable()
	for p, c := range board {
		require.NoError(t, table.Pyramid.Place(p, c))
	}
	table.Reserve = deck.NewPile(reserve...)
	table.DrawPile = deck.NewPile(drawPile...)

	rick := &Player{Name: "Rick Sanchez"}
	morty := &Player{Name: "Morty Smith"}

	return Existing(GameOpts{
		Table:         table,
		PlayerA:       rick,
		PlayerB:       morty,
		CurrentPlayer: rick,
	})
}

// eventRecorder keeps every event it is notified of
type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) Notify(e Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) kinds() []string {
	kinds := []string{}
	for _, e := range r.events {
		switch e.(type) {
		case GameStarted:
			kinds = append(kinds, "GameStarted")
		case ScoreUpdated:
			kinds = append(kinds, "ScoreUpdated")
		case PairRemoved:
			kinds = append(kinds, "PairRemoved")
		case CardDrawn:
			kinds = append(kinds, "CardDrawn")
		case SatOut:
			kinds = append(kinds, "SatOut")
		case GameFinished:
			kinds = append(kinds, "GameFinished")
		}
	}
	return kinds
}

func snapshotOf(g *Game) (pyramid [][]Slot, reserve, drawPile []deck.Card, scoreA, scoreB int, current string, sitOuts int) {
	s := g.State()
	return s.Table.Pyramid.Snapshot(), s.Table.Reserve.Cards(), s.Table.DrawPile.Cards(),
		s.PlayerA.Score, s.PlayerB.Score, s.CurrentPlayer.Name, s.SitOutCount
}
