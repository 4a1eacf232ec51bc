package engine

import (
	"context"

	"github.com/minaorangina/pyramid/protocol"
	uuid "github.com/satori/go.uuid"
)

// NewID returns a fresh id for a game or player
func NewID() string {
	return uuid.NewV4().String()
}

// Player makes the decisions for one side of the table
type Player interface {
	ID() string
	Name() string
	// Decide answers a Turn message with the player's move
	Decide(ctx context.Context, msg protocol.OutboundMessage) (protocol.InboundMessage, error)
}

// Players represents all players in a game
type Players []Player

// NewPlayers returns a set of Players
func NewPlayers(p ...Player) Players {
	return Players(p)
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if p.ID() == id {
			return p, true
		}
	}

	return nil, false
}
