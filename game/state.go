package game

import (
	"errors"

	"github.com/minaorangina/pyramid/deck"
)

var ErrNegativeScore = errors.New("score must be greater or equal to 0")

// maxSitOuts consecutive passes end the game
const maxSitOuts = 2

// Player is a named participant. Their score never goes down.
type Player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// NewPlayer constructs a player with a starting score
func NewPlayer(name string, score int) (*Player, error) {
	if score < 0 {
		return nil, ErrNegativeScore
	}
	return &Player{Name: name, Score: score}, nil
}

func (p *Player) award(points int) {
	if points > 0 {
		p.Score += points
	}
}

// Table holds every card in play
type Table struct {
	Pyramid  *Pyramid
	Reserve  *deck.Pile
	DrawPile *deck.Pile
}

// NewTable returns a table with an empty pyramid and empty piles
func NewTable() *Table {
	return &Table{
		Pyramid:  NewPyramid(),
		Reserve:  deck.NewPile(),
		DrawPile: deck.NewPile(),
	}
}

// GameState is the whole mutable state of a match.
// CurrentPlayer always points at PlayerA or PlayerB.
type GameState struct {
	Table         *Table
	PlayerA       *Player
	PlayerB       *Player
	CurrentPlayer *Player
	SitOutCount   int
}

func (s *GameState) clone() *GameState {
	playerA, playerB := *s.PlayerA, *s.PlayerB
	c := &GameState{
		Table: &Table{
			Pyramid:  s.Table.Pyramid.clone(),
			Reserve:  deck.NewPile(s.Table.Reserve.Cards()...),
			DrawPile: deck.NewPile(s.Table.DrawPile.Cards()...),
		},
		PlayerA:     &playerA,
		PlayerB:     &playerB,
		SitOutCount: s.SitOutCount,
	}
	c.CurrentPlayer = c.PlayerA
	if s.CurrentPlayer == s.PlayerB {
		c.CurrentPlayer = c.PlayerB
	}
	return c
}

func (s *GameState) opponent(p *Player) *Player {
	if p == s.PlayerA {
		return s.PlayerB
	}
	return s.PlayerA
}

func (s *GameState) switchCurrentPlayer() {
	s.CurrentPlayer = s.opponent(s.CurrentPlayer)
}
