package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/minaorangina/pyramid/deck"
	"github.com/minaorangina/pyramid/game"
	"github.com/minaorangina/pyramid/protocol"
	"go.uber.org/zap"
)

var (
	ErrTooFewPlayers  = errors.New("2 players required")
	ErrTooManyPlayers = errors.New("only 2 players allowed")
	ErrInvalidMove    = errors.New("invalid move")
	ErrNotAPair       = errors.New("those cards don't make a pair")
	ErrUnknownCommand = errors.New("unknown command")
)

// rejected moves are reported back to the player, who tries again
var rejectedMoves = []error{
	ErrInvalidMove,
	ErrNotAPair,
	ErrUnknownCommand,
	game.ErrEmptyDrawPile,
	game.ErrInconsistentReserveState,
	game.ErrCardNotInPyramid,
}

// Result is the outcome of a finished match
type Result struct {
	Players []protocol.Player
	// Winner is empty for a draw
	Winner string
}

// GameEngine runs one match between two players sharing a display
type GameEngine struct {
	id            string
	game          *game.Game
	players       Players
	out           io.Writer
	logger        *zap.Logger
	maxRejections int
}

type GameEngineOpts struct {
	GameID string
	// Players[0] sits as player A, Players[1] as player B
	Players Players
	// Game is optional; a new game is dealt on Run if it hasn't started
	Game   *game.Game
	Rand   *rand.Rand
	Out    io.Writer
	Logger *zap.Logger
}

// NewGameEngine constructs a GameEngine
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	if len(opts.Players) < 2 {
		return nil, ErrTooFewPlayers
	}
	if len(opts.Players) > 2 {
		return nil, ErrTooManyPlayers
	}

	ge := &GameEngine{
		id:            opts.GameID,
		game:          opts.Game,
		players:       opts.Players,
		out:           opts.Out,
		logger:        opts.Logger,
		maxRejections: retries,
	}
	if ge.id == "" {
		ge.id = NewID()
	}
	if ge.game == nil {
		ge.game = game.New(opts.Rand)
	}
	if ge.out == nil {
		ge.out = io.Discard
	}
	if ge.logger == nil {
		ge.logger = zap.NewNop()
	}
	ge.logger = ge.logger.With(zap.String("game_id", ge.id))

	ge.game.Subscribe(ge)

	return ge, nil
}

func (ge *GameEngine) ID() string {
	return ge.id
}

func (ge *GameEngine) Players() Players {
	return ge.players
}

func (ge *GameEngine) Game() *game.Game {
	return ge.game
}

// Start deals a new match
func (ge *GameEngine) Start() {
	ge.logger.Info("starting game",
		zap.String("player_a", ge.players[0].Name()),
		zap.String("player_b", ge.players[1].Name()),
	)
	ge.game.StartGame(ge.players[0].Name(), ge.players[1].Name())
}

// Run plays turns until the game is finished.
// It stops early if ctx is done or a player can't answer.
func (ge *GameEngine) Run(ctx context.Context) (Result, error) {
	if ge.game.PlayState() == game.NotStarted {
		ge.Start()
	}

	rejections := 0
	for !ge.game.IsGameFinished() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		player := ge.currentPlayer()
		msg := game.BuildTurnMessage(ge.game)
		msg.PlayerID = player.ID()

		decision, err := player.Decide(ctx, msg)
		if err != nil {
			return Result{}, fmt.Errorf("waiting for %s: %w", player.Name(), err)
		}

		err = ge.apply(decision)
		if err == nil {
			rejections = 0
			continue
		}
		if !isRejection(err) {
			return Result{}, err
		}

		rejections++
		ge.logger.Warn("move rejected",
			zap.String("player", player.Name()),
			zap.Stringer("cmd", decision.Command),
			zap.Ints("decision", decision.Decision),
			zap.Error(err),
		)
		fmt.Fprintf(ge.out, rejectedText, err)

		if rejections >= ge.maxRejections {
			rejections = 0
			fmt.Fprintf(ge.out, maxRetriesText, player.Name())
			if err := ge.game.SitOut(); err != nil {
				return Result{}, err
			}
		}
	}

	return ge.result(), nil
}

// Notify renders and logs game events
func (ge *GameEngine) Notify(e game.Event) {
	msg := game.BuildMessage(e)
	ge.logger.Info("game event",
		zap.Stringer("cmd", msg.Command),
		zap.String("message", msg.Message),
	)

	switch ev := e.(type) {
	case game.GameFinished:
		fmt.Fprint(ge.out, buildFinalScoresText(ev.PlayerA, ev.ScoreA, ev.PlayerB, ev.ScoreB))
	default:
		fmt.Fprintf(ge.out, "%s\n", msg.Message)
	}
}

func (ge *GameEngine) currentPlayer() Player {
	s := ge.game.State()
	if s.CurrentPlayer == s.PlayerB {
		return ge.players[1]
	}
	return ge.players[0]
}

func (ge *GameEngine) apply(decision protocol.InboundMessage) error {
	switch decision.Command {
	case protocol.RemovePair:
		if len(decision.Decision) != 2 {
			return fmt.Errorf("%w: choose two cards", ErrInvalidMove)
		}
		a, err := ge.visibleCardAt(decision.Decision[0])
		if err != nil {
			return err
		}
		b, err := ge.visibleCardAt(decision.Decision[1])
		if err != nil {
			return err
		}
		if decision.Decision[0] == decision.Decision[1] {
			return fmt.Errorf("%w: choose two different cards", ErrInvalidMove)
		}
		return ge.removePair(a, b, false)

	case protocol.RemoveReservePair:
		if len(decision.Decision) != 1 {
			return fmt.Errorf("%w: choose one pyramid card", ErrInvalidMove)
		}
		top, ok := ge.game.State().Table.Reserve.Peek()
		if !ok {
			return fmt.Errorf("%w: the reserve is empty", ErrInvalidMove)
		}
		c, err := ge.visibleCardAt(decision.Decision[0])
		if err != nil {
			return err
		}
		return ge.removePair(top, c, true)

	case protocol.Draw:
		_, err := ge.game.DrawCard()
		return err

	case protocol.SitOut:
		return ge.game.SitOut()
	}

	return fmt.Errorf("%w: %s", ErrUnknownCommand, decision.Command)
}

func (ge *GameEngine) removePair(a, b deck.Card, useReserve bool) error {
	kind, err := ge.game.RemovePair(a, b, useReserve)
	if err != nil {
		return err
	}
	if kind == game.InvalidPair {
		return fmt.Errorf("%w: %s and %s", ErrNotAPair, a.Short(), b.Short())
	}
	return nil
}

// visibleCardAt finds the face-up card at a flattened pyramid position
func (ge *GameEngine) visibleCardAt(idx int) (deck.Card, error) {
	pos, err := game.PositionFromIndex(idx)
	if err != nil {
		return deck.Card{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	c, ok := ge.game.State().Table.Pyramid.At(pos)
	if !ok {
		return deck.Card{}, fmt.Errorf("%w: no card at %s", ErrInvalidMove, pos)
	}
	if !c.Visible {
		return deck.Card{}, fmt.Errorf("%w: the card at %s is face down", ErrInvalidMove, pos)
	}
	return c, nil
}

func (ge *GameEngine) result() Result {
	s := ge.game.State()
	return Result{
		Players: []protocol.Player{
			{PlayerID: ge.players[0].ID(), Name: s.PlayerA.Name, Score: s.PlayerA.Score},
			{PlayerID: ge.players[1].ID(), Name: s.PlayerB.Name, Score: s.PlayerB.Score},
		},
		Winner: ge.game.Winner(),
	}
}

func isRejection(err error) bool {
	for _, target := range rejectedMoves {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
