package game

import (
	"testing"

	"github.com/minaorangina/pyramid/deck"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPair(t *testing.T) {
	cases := []struct {
		name   string
		a, b   deck.Card
		want   PairKind
		points int
	}{
		{"two aces", card(deck.Ace, deck.Hearts), card(deck.Ace, deck.Spades), InvalidPair, 0},
		{"ace and a number", card(deck.Ace, deck.Hearts), card(deck.Four, deck.Clubs), AcePair, 1},
		{"ace and a face card", card(deck.King, deck.Hearts), card(deck.Ace, deck.Clubs), AcePair, 1},
		{"seven and eight", card(deck.Seven, deck.Hearts), card(deck.Eight, deck.Clubs), SumPair, 2},
		{"five and ten", card(deck.Five, deck.Diamonds), card(deck.Ten, deck.Diamonds), SumPair, 2},
		{"two and king", card(deck.Two, deck.Hearts), card(deck.King, deck.Spades), SumPair, 2},
		{"three and queen", card(deck.Three, deck.Hearts), card(deck.Queen, deck.Spades), SumPair, 2},
		{"four and jack", card(deck.Four, deck.Hearts), card(deck.Jack, deck.Spades), SumPair, 2},
		{"two twos", card(deck.Two, deck.Hearts), card(deck.Two, deck.Clubs), InvalidPair, 0},
		{"sum of sixteen", card(deck.Eight, deck.Hearts), card(deck.Eight, deck.Clubs), InvalidPair, 0},
		{"sum of fourteen", card(deck.Seven, deck.Hearts), card(deck.Seven, deck.Clubs), InvalidPair, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ClassifyPair(c.a, c.b))
			assert.Equal(t, c.points, ClassifyPair(c.a, c.b).Points())
		})
	}

	t.Run("is symmetric for every pair of cards", func(t *testing.T) {
		cards := deck.New()
		for _, a := range cards {
			for _, b := range cards {
				if ClassifyPair(a, b) != ClassifyPair(b, a) {
					t.Fatalf("ClassifyPair(%s, %s) is not symmetric", a, b)
				}
			}
		}
	})

	t.Run("ignores visibility", func(t *testing.T) {
		assert.Equal(t, SumPair, ClassifyPair(faceUp(deck.Six, deck.Hearts), card(deck.Nine, deck.Clubs)))
	})
}
