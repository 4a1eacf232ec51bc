package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/minaorangina/pyramid/game"
	"github.com/minaorangina/pyramid/protocol"
)

var retries = 3

var (
	errUnknownInput   = errors.New("try one of the moves listed")
	errMoveNotOffered = errors.New("that move isn't available right now")
	errBadPosition    = errors.New("positions look like ROW,COL, e.g. 3,1")
	errWrongCardCount = errors.New("wrong number of cards for that move")
)

// CLIPlayer is a person typing moves at a Console
type CLIPlayer struct {
	id      string
	name    string
	console *Console
	timeout time.Duration
}

func NewCLIPlayer(id, name string, console *Console, timeout time.Duration) *CLIPlayer {
	return &CLIPlayer{
		id:      id,
		name:    name,
		console: console,
		timeout: timeout,
	}
}

func (p *CLIPlayer) ID() string {
	return p.id
}

func (p *CLIPlayer) Name() string {
	return p.name
}

// Decide shows the board and reads a move.
// A player who times out or keeps typing nonsense sits the turn out.
func (p *CLIPlayer) Decide(ctx context.Context, msg protocol.OutboundMessage) (protocol.InboundMessage, error) {
	sitOut := protocol.InboundMessage{PlayerID: p.id, Command: protocol.SitOut}

	p.console.SendText("%s", buildBoardText(msg))
	moves := buildMovesText(msg.Moves)

	for retriesLeft := retries; retriesLeft > 0; retriesLeft-- {
		p.console.SendText(turnPromptText, p.name, moves)

		line, err := p.console.ReadLine(ctx, p.timeout)
		if errors.Is(err, ErrTimeout) {
			p.console.SendText(timeoutText, p.name)
			return sitOut, nil
		}
		if err != nil {
			return protocol.InboundMessage{}, err
		}

		decision, err := parseDecision(line, msg.Moves)
		if err != nil {
			p.console.SendText(retryInputText, err.Error())
			continue
		}
		decision.PlayerID = p.id
		return decision, nil
	}

	p.console.SendText(maxRetriesText, p.name)
	return sitOut, nil
}

// parseDecision reads one of "pair R,C R,C", "reserve R,C", "draw" or "pass"
func parseDecision(line string, offered []protocol.Cmd) (protocol.InboundMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return protocol.InboundMessage{}, errUnknownInput
	}

	var (
		cmd      protocol.Cmd
		numCards int
	)
	switch fields[0] {
	case "pair", "p":
		cmd, numCards = protocol.RemovePair, 2
	case "reserve", "r":
		cmd, numCards = protocol.RemoveReservePair, 1
	case "draw", "d":
		cmd = protocol.Draw
	case "pass", "sit", "s":
		cmd = protocol.SitOut
	default:
		return protocol.InboundMessage{}, errUnknownInput
	}

	if !cmdOffered(cmd, offered) {
		return protocol.InboundMessage{}, errMoveNotOffered
	}
	if len(fields)-1 != numCards {
		return protocol.InboundMessage{}, errWrongCardCount
	}

	decision := []int{}
	for _, f := range fields[1:] {
		pos, err := parsePosition(f)
		if err != nil {
			return protocol.InboundMessage{}, err
		}
		decision = append(decision, pos.Index())
	}

	return protocol.InboundMessage{Command: cmd, Decision: decision}, nil
}

func parsePosition(s string) (game.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return game.Position{}, errBadPosition
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return game.Position{}, errBadPosition
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return game.Position{}, errBadPosition
	}

	pos := game.Position{Row: row, Col: col}
	if !pos.Valid() {
		return game.Position{}, fmt.Errorf("%w: %s", game.ErrOutOfBounds, pos)
	}
	return pos, nil
}

func cmdOffered(cmd protocol.Cmd, offered []protocol.Cmd) bool {
	for _, o := range offered {
		if o == cmd {
			return true
		}
	}
	return false
}
