package game

import "github.com/minaorangina/pyramid/deck"

// Event is a state change announced to observers.
// The set of events is closed: only the types in this file implement it.
type Event interface {
	isEvent()
}

// GameStarted carries the freshly dealt table
type GameStarted struct {
	PlayerA  string
	PlayerB  string
	Pyramid  [][]Slot
	DrawPile []deck.Card
}

// ScoreUpdated is sent when a player scores
type ScoreUpdated struct {
	Score  int
	Player string
}

// PairRemoved describes a successful removal.
// PosA or PosB is nil when that card came off the reserve stack.
type PairRemoved struct {
	NextPlayer Player
	PosA       *Position
	PosB       *Position
	ReserveTop *deck.Card
	Revealed   []Position
}

// CardDrawn is sent after a card moves from the draw pile to the reserve
type CardDrawn struct {
	NextPlayer Player
	Card       deck.Card
}

// SatOut is sent when a player passes
type SatOut struct {
	NextPlayer Player
}

// GameFinished carries the final scores
type GameFinished struct {
	PlayerA string
	ScoreA  int
	PlayerB string
	ScoreB  int
}

func (GameStarted) isEvent()  {}
func (ScoreUpdated) isEvent() {}
func (PairRemoved) isEvent()  {}
func (CardDrawn) isEvent()    {}
func (SatOut) isEvent()       {}
func (GameFinished) isEvent() {}

// Observer receives every event a game broadcasts.
// Observers may read game state but must not change it.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to an Observer
type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) {
	f(e)
}

type broadcaster struct {
	observers []Observer
}

// Subscribe registers o. Observers are notified in registration order.
func (b *broadcaster) Subscribe(o Observer) {
	if o == nil {
		return
	}
	b.observers = append(b.observers, o)
}

func (b *broadcaster) broadcast(e Event) {
	for _, o := range b.observers {
		o.Notify(e)
	}
}
