package engine

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/minaorangina/pyramid/deck"
	"github.com/minaorangina/pyramid/game"
	"github.com/minaorangina/pyramid/protocol"
	"github.com/stretchr/testify/require"
)

// scriptedPlayer answers turns from a fixed list, then sits out
type scriptedPlayer struct {
	id        string
	name      string
	decisions []protocol.InboundMessage
	received  []protocol.OutboundMessage
}

func newScriptedPlayer(name string, decisions ...protocol.InboundMessage) *scriptedPlayer {
	return &scriptedPlayer{id: NewID(), name: name, decisions: decisions}
}

func (p *scriptedPlayer) ID() string {
	return p.id
}

func (p *scriptedPlayer) Name() string {
	return p.name
}

func (p *scriptedPlayer) Decide(ctx context.Context, msg protocol.OutboundMessage) (protocol.InboundMessage, error) {
	p.received = append(p.received, msg)
	if len(p.decisions) == 0 {
		return protocol.InboundMessage{PlayerID: p.id, Command: protocol.SitOut}, nil
	}
	next := p.decisions[0]
	p.decisions = p.decisions[1:]
	next.PlayerID = p.id
	return next, nil
}

// blockingPlayer never answers until ctx is done
type blockingPlayer struct {
	scriptedPlayer
}

func (p *blockingPlayer) Decide(ctx context.Context, msg protocol.OutboundMessage) (protocol.InboundMessage, error) {
	<-ctx.Done()
	return protocol.InboundMessage{}, ctx.Err()
}

func decide(cmd protocol.Cmd, positions ...int) protocol.InboundMessage {
	return protocol.InboundMessage{Command: cmd, Decision: positions}
}

// stagedGame returns a game in progress where it is Rick's turn
func stagedGame(t *testing.T, board map[game.Position]deck.Card, reserve, drawPile []deck.Card) *game.Game {
	t.Helper()

	table := game.NewTable()
	for p, c := range board {
		require.NoError(t, table.Pyramid.Place(p, c))
	}
	table.Reserve = deck.NewPile(reserve...)
	table.DrawPile = deck.NewPile(drawPile...)

	rick := &game.Player{Name: "Rick"}
	return game.Existing(game.GameOpts{
		Table:         table,
		PlayerA:       rick,
		PlayerB:       &game.Player{Name: "Morty"},
		CurrentPlayer: rick,
	})
}

func faceUp(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.Card{Rank: rank, Suit: suit, Visible: true}
}

func at(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

func idx(row, col int) int {
	return at(row, col).Index()
}

// TestBuffer is used in tests for io
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}
