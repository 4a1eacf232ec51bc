package deck

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCardValue = errors.New("card value must be between 1 and 13")
	ErrInvalidSuit      = errors.New("card suit out of range")
)

// Rank represents a rank in a deck of cards.
// Its integer value is the card's numeric equivalent (Ace is 1, King is 13).
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankLabels = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Value returns the numeric equivalent of a rank
func (r Rank) Value() int {
	return int(r)
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r-1]
}

// Label is the short form of a rank, e.g. "10" or "Q"
func (r Rank) Label() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankLabels[r-1]
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

var suitSymbols = []string{"♣", "♦", "♥", "♠"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the suit's playing card symbol
func (s Suit) Symbol() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitSymbols[s]
}

// Card is a playing card.
// Rank and suit never change once a card is made; Visible is flipped
// in place as the card is exposed.
type Card struct {
	Rank    Rank `json:"rank"`
	Suit    Suit `json:"suit"`
	Visible bool `json:"visible"`
}

// NewCard constructs a face-down card from a raw rank (1-13) and suit (0-3)
func NewCard(rank, suit int) (Card, error) {
	if rank < int(Ace) || rank > int(King) {
		return Card{}, fmt.Errorf("%w: got %d", ErrInvalidCardValue, rank)
	}
	if suit < int(Clubs) || suit > int(Spades) {
		return Card{}, fmt.Errorf("%w: got %d", ErrInvalidSuit, suit)
	}
	return Card{Rank: Rank(rank), Suit: Suit(suit)}, nil
}

// IsAce reports whether the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Same reports whether two cards have the same rank and suit, regardless of visibility
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns a compact label such as "7♥" or "Q♠"
func (c Card) Short() string {
	return c.Rank.Label() + c.Suit.Symbol()
}
