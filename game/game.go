package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/minaorangina/pyramid/deck"
)

var (
	ErrEmptyDrawPile            = errors.New("there is no card to be drawn from the pile")
	ErrInconsistentReserveState = errors.New("reserve pair needs one card in the pyramid and the other on top of the reserve stack")
	ErrCardNotInPyramid         = errors.New("card is not in the pyramid")
	ErrGameNotStarted           = errors.New("game has not started")
	ErrGameOver                 = errors.New("game is already over")
)

// Game runs a two player match of Pyramid.
// It is not safe for concurrent use; one action is applied at a time.
type Game struct {
	broadcaster
	rng       *rand.Rand
	state     *GameState
	playState PlayState
}

// GameOpts describes a match already in progress
type GameOpts struct {
	Rand          *rand.Rand
	Table         *Table
	PlayerA       *Player
	PlayerB       *Player
	CurrentPlayer *Player
	SitOutCount   int
}

// New constructs a game that has not started yet.
// A nil rng falls back to a time-seeded source.
func New(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{rng: rng}
}

// Existing constructs a game around a table that is already in play.
// A staged state that already meets an end condition is treated as finished.
func Existing(opts GameOpts) *Game {
	g := New(opts.Rand)

	table := opts.Table
	if table == nil {
		table = NewTable()
	}
	if table.Pyramid == nil {
		table.Pyramid = NewPyramid()
	}
	if table.Reserve == nil {
		table.Reserve = deck.NewPile()
	}
	if table.DrawPile == nil {
		table.DrawPile = deck.NewPile()
	}

	playerA, playerB := opts.PlayerA, opts.PlayerB
	if playerA == nil {
		playerA = &Player{}
	}
	if playerB == nil {
		playerB = &Player{}
	}

	current := opts.CurrentPlayer
	if current != playerB {
		current = playerA
	}

	sitOutCount := opts.SitOutCount
	if sitOutCount < 0 {
		sitOutCount = 0
	}
	if sitOutCount > maxSitOuts {
		sitOutCount = maxSitOuts
	}

	g.state = &GameState{
		Table:         table,
		PlayerA:       playerA,
		PlayerB:       playerB,
		CurrentPlayer: current,
		SitOutCount:   sitOutCount,
	}
	g.playState = InProgress
	if g.IsGameFinished() {
		g.playState = Finished
	}

	return g
}

// StartGame deals a fresh match, discarding any previous one.
// The first player is picked at random.
func (g *Game) StartGame(nameA, nameB string) {
	cards := deck.New()
	cards.Shuffle(g.rng)

	table := NewTable()
	for row := 0; row < numRows; row++ {
		for col, c := range cards.Deal(row + 1) {
			// only the edges of each row start face up
			c.Visible = col == 0 || col == row
			table.Pyramid.rows[row][col] = Occupied(c)
		}
	}
	for _, c := range cards.Deal(len(cards)) {
		table.DrawPile.Push(c)
	}

	playerA := &Player{Name: nameA}
	playerB := &Player{Name: nameB}
	current := playerA
	if g.rng.Intn(2) == 1 {
		current = playerB
	}

	g.state = &GameState{
		Table:         table,
		PlayerA:       playerA,
		PlayerB:       playerB,
		CurrentPlayer: current,
	}
	g.playState = InProgress

	g.broadcast(GameStarted{
		PlayerA:  playerA.Name,
		PlayerB:  playerB.Name,
		Pyramid:  table.Pyramid.Snapshot(),
		DrawPile: table.DrawPile.Cards(),
	})
}

// State returns a copy of the match state.
// Changes to the copy do not affect the game; only the game's own actions change it.
func (g *Game) State() *GameState {
	if g.state == nil {
		return nil
	}
	return g.state.clone()
}

func (g *Game) PlayState() PlayState {
	return g.playState
}

// CurrentPlayerName returns the name of the player whose turn it is
func (g *Game) CurrentPlayerName() string {
	if g.state == nil {
		return ""
	}
	return g.state.CurrentPlayer.Name
}

// IsGameFinished reports whether both players have passed in a row
// or the pyramid has been cleared
func (g *Game) IsGameFinished() bool {
	if g.state == nil {
		return false
	}
	return g.state.SitOutCount >= maxSitOuts || g.state.Table.Pyramid.IsEmpty()
}

// Winner returns the name of the player with the higher score once the game is finished.
// It returns "" for a draw or a game still in play.
func (g *Game) Winner() string {
	if g.playState != Finished {
		return ""
	}
	a, b := g.state.PlayerA, g.state.PlayerB
	switch {
	case a.Score > b.Score:
		return a.Name
	case b.Score > a.Score:
		return b.Name
	}
	return ""
}

// RemovePair removes two matching cards and scores them for the current player.
// With useReserve set, one card must be on top of the reserve stack and the other in the pyramid.
// A pair that does not match is ignored: nothing changes and InvalidPair is returned with no error.
func (g *Game) RemovePair(a, b deck.Card, useReserve bool) (PairKind, error) {
	if err := g.checkPlayable(); err != nil {
		return InvalidPair, err
	}

	kind := ClassifyPair(a, b)
	if kind == InvalidPair {
		return InvalidPair, nil
	}

	table := g.state.Table
	posA, inPyramidA := table.Pyramid.Locate(a)
	posB, inPyramidB := table.Pyramid.Locate(b)

	var reserveTop *deck.Card
	if top, ok := table.Reserve.Peek(); ok {
		reserveTop = &top
	}

	var revealed []deck.Card
	if useReserve {
		if inPyramidA == inPyramidB {
			return InvalidPair, ErrInconsistentReserveState
		}
		onBoard, offBoard := a, b
		if !inPyramidA {
			onBoard, offBoard = b, a
		}
		if reserveTop == nil || !reserveTop.Same(offBoard) {
			return InvalidPair, ErrInconsistentReserveState
		}
		revealed = table.Pyramid.Remove(onBoard)
		table.Reserve.Pop()
	} else {
		if !inPyramidA || !inPyramidB {
			return InvalidPair, ErrCardNotInPyramid
		}
		revealed = table.Pyramid.Remove(a)
		revealed = append(revealed, table.Pyramid.Remove(b)...)
	}

	scorer := g.state.CurrentPlayer
	scorer.award(kind.Points())
	g.broadcast(ScoreUpdated{Score: scorer.Score, Player: scorer.Name})

	g.state.SitOutCount = 0
	g.state.switchCurrentPlayer()

	event := PairRemoved{
		NextPlayer: *g.state.CurrentPlayer,
		ReserveTop: reserveTop,
		Revealed:   g.positionsOf(revealed),
	}
	if inPyramidA {
		event.PosA = &posA
	}
	if inPyramidB {
		event.PosB = &posB
	}
	g.broadcast(event)

	g.finish()

	return kind, nil
}

// DrawCard turns over the top of the draw pile onto the reserve stack
func (g *Game) DrawCard() (deck.Card, error) {
	if err := g.checkPlayable(); err != nil {
		return deck.Card{}, err
	}

	table := g.state.Table
	card, ok := table.DrawPile.Pop()
	if !ok {
		return deck.Card{}, ErrEmptyDrawPile
	}
	card.Visible = true
	table.Reserve.Push(card)

	g.state.SitOutCount = 0
	g.state.switchCurrentPlayer()

	g.broadcast(CardDrawn{NextPlayer: *g.state.CurrentPlayer, Card: card})

	return card, nil
}

// SitOut passes the turn. Two passes in a row end the game.
func (g *Game) SitOut() error {
	if err := g.checkPlayable(); err != nil {
		return err
	}

	g.state.switchCurrentPlayer()
	g.state.SitOutCount++

	g.broadcast(SatOut{NextPlayer: *g.state.CurrentPlayer})

	if g.state.SitOutCount >= maxSitOuts {
		g.finish()
	}

	return nil
}

func (g *Game) checkPlayable() error {
	if g.state == nil || g.playState == NotStarted {
		return ErrGameNotStarted
	}
	if g.playState == Finished {
		return ErrGameOver
	}
	return nil
}

// finish announces the end of the game, once
func (g *Game) finish() {
	if g.playState == Finished || !g.IsGameFinished() {
		return
	}
	g.playState = Finished
	g.broadcast(GameFinished{
		PlayerA: g.state.PlayerA.Name,
		ScoreA:  g.state.PlayerA.Score,
		PlayerB: g.state.PlayerB.Name,
		ScoreB:  g.state.PlayerB.Score,
	})
}

// positionsOf looks up where cards sit now, skipping any no longer in the pyramid
func (g *Game) positionsOf(cards []deck.Card) []Position {
	positions := []Position{}
	for _, c := range cards {
		if pos, ok := g.state.Table.Pyramid.Locate(c); ok {
			positions = append(positions, pos)
		}
	}
	return positions
}
