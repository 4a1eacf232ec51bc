package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/minaorangina/pyramid/deck"
	"github.com/minaorangina/pyramid/protocol"
)

const (
	cellWidth       = 5
	hiddenCardText  = "[??]"
	emptyCellText   = "."
	turnPromptText  = "%s, your move (%s): "
	retryInputText  = "Sorry, I didn't understand that. %s\n"
	timeoutText     = "\nTimed out: %s sits this turn out.\n"
	maxRetriesText  = "\nMax retries exceeded: %s sits this turn out.\n"
	rejectedText    = "That move isn't allowed: %s\n"
	finalScoresText = "\nFinal scores: %s %d, %s %d\n"
	winnerText      = "%s wins!\n"
	drawText        = "It's a draw.\n"
)

var moveHelp = map[protocol.Cmd]string{
	protocol.RemovePair:        "pair R,C R,C",
	protocol.RemoveReservePair: "reserve R,C",
	protocol.Draw:              "draw",
	protocol.SitOut:            "pass",
}

func padCenter(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func cardText(c *deck.Card) string {
	switch {
	case c == nil:
		return emptyCellText
	case !c.Visible:
		return hiddenCardText
	}
	return c.Short()
}

// buildPyramidText lays the pyramid out row by row, each row labelled with its number
func buildPyramidText(pyramid [][]*deck.Card) string {
	var b strings.Builder
	for r, row := range pyramid {
		indent := strings.Repeat(" ", (len(pyramid)-r-1)*cellWidth/2)
		fmt.Fprintf(&b, "%d  %s", r, indent)
		for _, c := range row {
			b.WriteString(padCenter(cardText(c), cellWidth))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func buildBoardText(msg protocol.OutboundMessage) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(buildPyramidText(msg.Pyramid))

	reserve := "empty"
	if msg.ReserveTop != nil {
		reserve = msg.ReserveTop.Short()
	}
	fmt.Fprintf(&b, "\nReserve: %s   Draw pile: %d cards\n", reserve, msg.DrawPileCount)

	scores := []string{}
	for _, p := range msg.Players {
		scores = append(scores, fmt.Sprintf("%s %d", p.Name, p.Score))
	}
	if len(scores) > 0 {
		fmt.Fprintf(&b, "Scores: %s\n", strings.Join(scores, ", "))
	}
	return b.String()
}

func buildMovesText(moves []protocol.Cmd) string {
	help := []string{}
	for _, m := range moves {
		if h, ok := moveHelp[m]; ok {
			help = append(help, h)
		}
	}
	return strings.Join(help, " | ")
}

func buildFinalScoresText(nameA string, scoreA int, nameB string, scoreB int) string {
	text := fmt.Sprintf(finalScoresText, nameA, scoreA, nameB, scoreB)
	switch {
	case scoreA > scoreB:
		text += fmt.Sprintf(winnerText, nameA)
	case scoreB > scoreA:
		text += fmt.Sprintf(winnerText, nameB)
	default:
		text += drawText
	}
	return text
}
