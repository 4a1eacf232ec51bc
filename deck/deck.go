package deck

import (
	"math/rand"
	"time"
)

// Deck represents a deck of cards
type Deck []Card

// New creates a full 52 card deck, face down, grouped by suit
func New() Deck {
	cards := make([]Card, 0, len(suitNames)*len(rankNames))
	for suit := range suitNames {
		for rank := range rankNames {
			cards = append(cards, Card{Rank: Rank(rank + 1), Suit: Suit(suit)})
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards using rng.
// A nil rng falls back to a time-seeded source.
func (d Deck) Shuffle(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal deals n cards from the top of the deck, in order.
// It returns nothing if there are not enough cards.
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}
