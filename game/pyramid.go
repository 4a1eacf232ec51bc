package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/pyramid/deck"
)

const (
	numRows         = 7
	numPyramidCards = numRows * (numRows + 1) / 2
)

var ErrOutOfBounds = errors.New("position is outside the pyramid")

// Position addresses a pyramid cell. Row r holds r+1 cells.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Valid reports whether the position lies inside the pyramid
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < numRows && p.Col >= 0 && p.Col <= p.Row
}

// Index flattens the position in row-major order (0-27)
func (p Position) Index() int {
	return p.Row*(p.Row+1)/2 + p.Col
}

// PositionFromIndex is the inverse of Position.Index
func PositionFromIndex(i int) (Position, error) {
	if i < 0 || i >= numPyramidCards {
		return Position{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, i)
	}
	row := 0
	for i > row {
		i -= row + 1
		row++
	}
	return Position{Row: row, Col: i}, nil
}

// Slot is one pyramid cell: either empty or holding exactly one card.
// The zero Slot is empty.
type Slot struct {
	card     deck.Card
	occupied bool
}

// Occupied returns a slot holding c
func Occupied(c deck.Card) Slot {
	return Slot{card: c, occupied: true}
}

// Card returns the slot's card, if any
func (s Slot) Card() (deck.Card, bool) {
	return s.card, s.occupied
}

func (s Slot) Empty() bool {
	return !s.occupied
}

// Pyramid is the triangular board: 7 rows of sizes 1 to 7
type Pyramid struct {
	rows [numRows][]Slot
}

// NewPyramid returns an empty pyramid
func NewPyramid() *Pyramid {
	p := &Pyramid{}
	for row := range p.rows {
		p.rows[row] = make([]Slot, row+1)
	}
	return p
}

// Rows returns the number of rows
func (p *Pyramid) Rows() int {
	return numRows
}

// RowLen returns the number of cells in row
func (p *Pyramid) RowLen(row int) int {
	if row < 0 || row >= numRows {
		return 0
	}
	return len(p.rows[row])
}

// Place puts c in the cell at pos, replacing whatever was there
func (p *Pyramid) Place(pos Position, c deck.Card) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	p.rows[pos.Row][pos.Col] = Occupied(c)
	return nil
}

// At returns the card at pos, if the cell is occupied
func (p *Pyramid) At(pos Position) (deck.Card, bool) {
	if !pos.Valid() {
		return deck.Card{}, false
	}
	return p.rows[pos.Row][pos.Col].Card()
}

// Locate scans row by row and returns the position of the first card
// with the same rank and suit as c
func (p *Pyramid) Locate(c deck.Card) (Position, bool) {
	for row := range p.rows {
		for col, slot := range p.rows[row] {
			if card, ok := slot.Card(); ok && card.Same(c) {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// Remove clears the cell holding c and reveals its neighbours.
// Removing a card that is not in the pyramid does nothing.
func (p *Pyramid) Remove(c deck.Card) []deck.Card {
	pos, ok := p.Locate(c)
	if !ok {
		return []deck.Card{}
	}
	p.rows[pos.Row][pos.Col] = Slot{}
	return p.RevealNeighbors(pos)
}

// RevealNeighbors turns face up the hidden cards directly left and right
// of pos in the same row, and returns them.
func (p *Pyramid) RevealNeighbors(pos Position) []deck.Card {
	revealed := []deck.Card{}
	if !pos.Valid() {
		return revealed
	}

	row := p.rows[pos.Row]
	for _, col := range []int{pos.Col - 1, pos.Col + 1} {
		if col < 0 || col >= len(row) || !row[col].occupied || row[col].card.Visible {
			continue
		}
		row[col].card.Visible = true
		revealed = append(revealed, row[col].card)
	}
	return revealed
}

// Count returns the number of occupied cells
func (p *Pyramid) Count() int {
	n := 0
	for row := range p.rows {
		for _, slot := range p.rows[row] {
			if slot.occupied {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether every cell is empty
func (p *Pyramid) IsEmpty() bool {
	return p.Count() == 0
}

func (p *Pyramid) clone() *Pyramid {
	c := &Pyramid{}
	for row := range p.rows {
		c.rows[row] = make([]Slot, len(p.rows[row]))
		copy(c.rows[row], p.rows[row])
	}
	return c
}

// Snapshot returns a copy of the cells, row by row
func (p *Pyramid) Snapshot() [][]Slot {
	out := make([][]Slot, numRows)
	for row := range p.rows {
		out[row] = make([]Slot, len(p.rows[row]))
		copy(out[row], p.rows[row])
	}
	return out
}
