package deck

// Pile is a last-in first-out stack of cards.
// Only the top card can be seen or taken.
type Pile struct {
	cards []Card
}

// NewPile builds a pile from cards ordered bottom to top
func NewPile(cards ...Card) *Pile {
	p := &Pile{cards: make([]Card, 0, len(cards))}
	p.cards = append(p.cards, cards...)
	return p
}

// Push puts a card on top of the pile
func (p *Pile) Push(c Card) {
	p.cards = append(p.cards, c)
}

// Pop takes the top card off the pile
func (p *Pile) Pop() (Card, bool) {
	if p.Empty() {
		return Card{}, false
	}
	top := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return top, true
}

// Peek returns the top card without removing it
func (p *Pile) Peek() (Card, bool) {
	if p.Empty() {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

// Cards returns a copy of the pile, bottom to top
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}
