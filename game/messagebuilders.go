package game

import (
	"fmt"

	"github.com/minaorangina/pyramid/deck"
	"github.com/minaorangina/pyramid/protocol"
)

// BuildMessage converts an event into its outbound message.
// Face-down cards are sent without their rank or suit.
func BuildMessage(e Event) protocol.OutboundMessage {
	switch ev := e.(type) {
	case GameStarted:
		return protocol.OutboundMessage{
			Command: protocol.GameStarted,
			Message: fmt.Sprintf("%s and %s sit down to play", ev.PlayerA, ev.PlayerB),
			Players: []protocol.Player{
				{Name: ev.PlayerA},
				{Name: ev.PlayerB},
			},
			Pyramid:       publicPyramid(ev.Pyramid),
			DrawPileCount: len(ev.DrawPile),
		}

	case ScoreUpdated:
		return protocol.OutboundMessage{
			Command:     protocol.ScoreUpdate,
			Message:     fmt.Sprintf("%s now has %d points", ev.Player, ev.Score),
			CurrentTurn: protocol.Player{Name: ev.Player, Score: ev.Score},
		}

	case PairRemoved:
		removed := []int{}
		for _, pos := range []*Position{ev.PosA, ev.PosB} {
			if pos != nil {
				removed = append(removed, pos.Index())
			}
		}
		revealed := []int{}
		for _, pos := range ev.Revealed {
			revealed = append(revealed, pos.Index())
		}
		return protocol.OutboundMessage{
			Command:    protocol.PairRemoved,
			Message:    fmt.Sprintf("Pair removed. %s to play", ev.NextPlayer.Name),
			NextTurn:   toProtocolPlayer(ev.NextPlayer),
			Removed:    removed,
			Revealed:   revealed,
			ReserveTop: ev.ReserveTop,
		}

	case CardDrawn:
		drawn := ev.Card
		return protocol.OutboundMessage{
			Command:  protocol.CardDrawn,
			Message:  fmt.Sprintf("%s drawn. %s to play", drawn.Short(), ev.NextPlayer.Name),
			NextTurn: toProtocolPlayer(ev.NextPlayer),
			Drawn:    &drawn,
		}

	case SatOut:
		return protocol.OutboundMessage{
			Command:  protocol.SatOut,
			Message:  fmt.Sprintf("Turn passed. %s to play", ev.NextPlayer.Name),
			NextTurn: toProtocolPlayer(ev.NextPlayer),
		}

	case GameFinished:
		return protocol.OutboundMessage{
			Command: protocol.GameOver,
			Message: "Game over",
			Players: []protocol.Player{
				{Name: ev.PlayerA, Score: ev.ScoreA},
				{Name: ev.PlayerB, Score: ev.ScoreB},
			},
		}
	}

	return protocol.OutboundMessage{Command: protocol.Null}
}

// BuildTurnMessage asks the current player for their move.
// Draw is only offered while the draw pile has cards, and a reserve pair
// only while the reserve stack has a top card.
func BuildTurnMessage(g *Game) protocol.OutboundMessage {
	s := g.State()
	if s == nil {
		return protocol.OutboundMessage{Command: protocol.Error, Error: ErrGameNotStarted.Error()}
	}

	msg := protocol.OutboundMessage{
		Command:       protocol.Turn,
		Message:       fmt.Sprintf("%s, it's your turn", s.CurrentPlayer.Name),
		Pyramid:       publicPyramid(s.Table.Pyramid.Snapshot()),
		DrawPileCount: s.Table.DrawPile.Len(),
		Players: []protocol.Player{
			toProtocolPlayer(*s.PlayerA),
			toProtocolPlayer(*s.PlayerB),
		},
		CurrentTurn:   toProtocolPlayer(*s.CurrentPlayer),
		ShouldRespond: true,
	}

	moves := []protocol.Cmd{protocol.RemovePair}
	if top, ok := s.Table.Reserve.Peek(); ok {
		msg.ReserveTop = &top
		moves = append(moves, protocol.RemoveReservePair)
	}
	if !s.Table.DrawPile.Empty() {
		moves = append(moves, protocol.Draw)
	}
	msg.Moves = append(moves, protocol.SitOut)

	return msg
}

func toProtocolPlayer(p Player) protocol.Player {
	return protocol.Player{Name: p.Name, Score: p.Score}
}

func publicPyramid(slots [][]Slot) [][]*deck.Card {
	rows := make([][]*deck.Card, len(slots))
	for r, row := range slots {
		rows[r] = make([]*deck.Card, len(row))
		for c, slot := range row {
			card, ok := slot.Card()
			if !ok {
				continue
			}
			if !card.Visible {
				card = deck.Card{}
			}
			rows[r][c] = &card
		}
	}
	return rows
}
