package game

import "github.com/minaorangina/pyramid/deck"

// PairKind classifies two cards chosen for removal
type PairKind int

const (
	InvalidPair PairKind = iota
	AcePair
	SumPair
)

const pairTarget = 15

var pairKindNames = []string{"InvalidPair", "AcePair", "SumPair"}

func (k PairKind) String() string {
	return pairKindNames[k]
}

// Points is the score awarded for removing the pair
func (k PairKind) Points() int {
	switch k {
	case AcePair:
		return 1
	case SumPair:
		return 2
	}
	return 0
}

// ClassifyPair decides whether a and b can be removed together.
// An Ace pairs with any card except another Ace; otherwise the ranks must add up to 15.
// Board position is not considered.
func ClassifyPair(a, b deck.Card) PairKind {
	switch {
	case a.IsAce() && b.IsAce():
		return InvalidPair
	case a.IsAce() || b.IsAce():
		return AcePair
	case a.Rank.Value()+b.Rank.Value() == pairTarget:
		return SumPair
	}
	return InvalidPair
}
