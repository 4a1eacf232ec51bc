package protocol

import (
	"github.com/minaorangina/pyramid/deck"
)

type Player struct {
	PlayerID string `json:"playerID,omitempty"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// InboundMessage is a decision sent by a Player to the GameEngine.
// Decision holds flattened pyramid positions (0-27, row by row).
type InboundMessage struct {
	PlayerID string `json:"playerID"`
	Command  Cmd    `json:"command"`
	Decision []int  `json:"decision,omitempty"`
}

// OutboundMessage is a message from the GameEngine to Players
type OutboundMessage struct {
	PlayerID      string         `json:"playerID,omitempty"`
	Command       Cmd            `json:"command"`
	Message       string         `json:"message,omitempty"`
	Pyramid       [][]*deck.Card `json:"pyramid,omitempty"`
	DrawPile      []deck.Card    `json:"drawPile,omitempty"`
	DrawPileCount int            `json:"drawPileCount"`
	ReserveTop    *deck.Card     `json:"reserveTop,omitempty"`
	Drawn         *deck.Card     `json:"drawn,omitempty"`
	Players       []Player       `json:"players,omitempty"`
	CurrentTurn   Player         `json:"currentTurn,omitempty"`
	NextTurn      Player         `json:"nextTurn,omitempty"`
	Removed       []int          `json:"removed,omitempty"`
	Revealed      []int          `json:"revealed,omitempty"`
	Moves         []Cmd          `json:"moves,omitempty"`
	ShouldRespond bool           `json:"shouldRespond"`
	Error         string         `json:"error,omitempty"`
}

type Cmd int

const (
	Null Cmd = iota
	// outbound
	GameStarted
	ScoreUpdate
	PairRemoved
	CardDrawn
	SatOut
	GameOver
	Turn
	Error
	// inbound
	RemovePair
	RemoveReservePair
	Draw
	SitOut
)

var CmdNames = map[Cmd]string{
	Null:              "Null",
	GameStarted:       "GameStarted",
	ScoreUpdate:       "ScoreUpdate",
	PairRemoved:       "PairRemoved",
	CardDrawn:         "CardDrawn",
	SatOut:            "SatOut",
	GameOver:          "GameOver",
	Turn:              "Turn",
	Error:             "Error",
	RemovePair:        "RemovePair",
	RemoveReservePair: "RemoveReservePair",
	Draw:              "Draw",
	SitOut:            "SitOut",
}

var NameToCmd = map[string]Cmd{
	"Null":              Null,
	"GameStarted":       GameStarted,
	"ScoreUpdate":       ScoreUpdate,
	"PairRemoved":       PairRemoved,
	"CardDrawn":         CardDrawn,
	"SatOut":            SatOut,
	"GameOver":          GameOver,
	"Turn":              Turn,
	"Error":             Error,
	"RemovePair":        RemovePair,
	"RemoveReservePair": RemoveReservePair,
	"Draw":              Draw,
	"SitOut":            SitOut,
}

func (c Cmd) String() string {
	return CmdNames[c]
}
