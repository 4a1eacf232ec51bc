package game

import (
	"testing"

	"github.com/minaorangina/pyramid/deck"
	utils "github.com/minaorangina/pyramid/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("indexes round trip", func(t *testing.T) {
		for i := 0; i < numPyramidCards; i++ {
			p, err := PositionFromIndex(i)
			require.NoError(t, err)
			assert.True(t, p.Valid())
			assert.Equal(t, i, p.Index())
		}
	})

	t.Run("known positions", func(t *testing.T) {
		assert.Equal(t, 0, pos(0, 0).Index())
		assert.Equal(t, 2, pos(1, 1).Index())
		assert.Equal(t, 3, pos(2, 0).Index())
		assert.Equal(t, 27, pos(6, 6).Index())
	})

	t.Run("out of range", func(t *testing.T) {
		for _, i := range []int{-1, numPyramidCards} {
			_, err := PositionFromIndex(i)
			utils.AssertErrorIs(t, err, ErrOutOfBounds)
		}
		assert.False(t, pos(1, 2).Valid())
		assert.False(t, pos(7, 0).Valid())
		assert.False(t, pos(0, -1).Valid())
	})
}

func TestPyramid(t *testing.T) {
	t.Run("has 7 rows of sizes 1 to 7", func(t *testing.T) {
		p := NewPyramid()
		assert.Equal(t, 7, p.Rows())
		for row := 0; row < p.Rows(); row++ {
			assert.Equal(t, row+1, p.RowLen(row))
		}
		assert.True(t, p.IsEmpty())
	})

	t.Run("won't place outside the pyramid", func(t *testing.T) {
		p := NewPyramid()
		err := p.Place(pos(2, 3), card(deck.Two, deck.Clubs))
		utils.AssertErrorIs(t, err, ErrOutOfBounds)
		assert.True(t, p.IsEmpty())
	})

	t.Run("locates by rank and suit", func(t *testing.T) {
		p := NewPyramid()
		require.NoError(t, p.Place(pos(3, 2), faceUp(deck.Jack, deck.Hearts)))

		found, ok := p.Locate(card(deck.Jack, deck.Hearts))
		assert.True(t, ok)
		assert.Equal(t, pos(3, 2), found)

		_, ok = p.Locate(card(deck.Jack, deck.Spades))
		assert.False(t, ok)
	})

	t.Run("locate returns the first match in row order", func(t *testing.T) {
		p := NewPyramid()
		require.NoError(t, p.Place(pos(4, 0), card(deck.Two, deck.Clubs)))
		require.NoError(t, p.Place(pos(1, 1), card(deck.Two, deck.Clubs)))

		found, ok := p.Locate(card(deck.Two, deck.Clubs))
		assert.True(t, ok)
		assert.Equal(t, pos(1, 1), found)
	})

	t.Run("remove clears the cell and reveals same-row neighbours", func(t *testing.T) {
		p := NewPyramid()
		left := card(deck.Three, deck.Clubs)
		middle := faceUp(deck.Four, deck.Clubs)
		right := card(deck.Five, deck.Clubs)
		below := card(deck.Six, deck.Clubs)
		require.NoError(t, p.Place(pos(2, 0), left))
		require.NoError(t, p.Place(pos(2, 1), middle))
		require.NoError(t, p.Place(pos(2, 2), right))
		require.NoError(t, p.Place(pos(3, 1), below))

		revealed := p.Remove(middle)

		assert.Len(t, revealed, 2)
		assert.True(t, revealed[0].Same(left))
		assert.True(t, revealed[1].Same(right))
		assert.True(t, revealed[0].Visible)

		_, ok := p.At(pos(2, 1))
		assert.False(t, ok)

		c, _ := p.At(pos(2, 0))
		assert.True(t, c.Visible)
		c, _ = p.At(pos(3, 1))
		assert.False(t, c.Visible, "the row below is not revealed")
	})

	t.Run("already visible neighbours are not reported", func(t *testing.T) {
		p := NewPyramid()
		require.NoError(t, p.Place(pos(1, 0), faceUp(deck.Nine, deck.Spades)))
		require.NoError(t, p.Place(pos(1, 1), faceUp(deck.Ten, deck.Spades)))

		assert.Empty(t, p.Remove(card(deck.Ten, deck.Spades)))
	})

	t.Run("edge cells only have one neighbour", func(t *testing.T) {
		p := NewPyramid()
		require.NoError(t, p.Place(pos(6, 5), card(deck.Nine, deck.Spades)))
		require.NoError(t, p.Place(pos(6, 6), faceUp(deck.Ten, deck.Spades)))

		revealed := p.Remove(card(deck.Ten, deck.Spades))
		assert.Len(t, revealed, 1)
	})

	t.Run("removing a missing card is a no-op", func(t *testing.T) {
		p := NewPyramid()
		require.NoError(t, p.Place(pos(0, 0), card(deck.Nine, deck.Spades)))

		assert.Empty(t, p.Remove(card(deck.Ace, deck.Spades)))
		assert.Equal(t, 1, p.Count())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		p := NewPyramid()
		require.NoError(t, p.Place(pos(0, 0), card(deck.Nine, deck.Spades)))

		snap := p.Snapshot()
		p.Remove(card(deck.Nine, deck.Spades))

		c, ok := snap[0][0].Card()
		assert.True(t, ok)
		assert.Equal(t, deck.Nine, c.Rank)
	})
}
