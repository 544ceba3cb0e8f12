package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell should be empty
	require.Equal(t, [BoardSize]Cell{}, board.Cells())
	assert.False(t, board.IsFull())
}

func TestBoard_Init(t *testing.T) {
	// Given: a board with a few marks on it
	board := NewBoard()
	require.NoError(t, board.PlaceMark(0, MarkX))
	require.NoError(t, board.PlaceMark(4, MarkO))

	// When: the board is initialized again
	board.Init()

	// Then: all cells should be empty again
	require.Equal(t, [BoardSize]Cell{}, board.Cells())

	// And: a second init should change nothing
	board.Init()
	require.Equal(t, [BoardSize]Cell{}, board.Cells())
}

func TestBoard_PlaceMark(t *testing.T) {
	t.Run("Places mark on empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: x is placed in the center
		err := board.PlaceMark(4, MarkX)

		// Then: the cell should hold x
		require.NoError(t, err)
		cell, err := board.Cell(4)
		require.NoError(t, err)
		assert.Equal(t, MarkX, cell)
	})

	t.Run("Rejects positions outside the board", func(t *testing.T) {
		for _, position := range []int{-100, -1, 9, 10, 20} {
			// Given: an empty board
			board := NewBoard()

			// When: a mark is placed out of range
			err := board.PlaceMark(position, MarkX)

			// Then: ErrInvalidPosition should be returned and the board unchanged
			require.ErrorIs(t, err, ErrInvalidPosition, "position %d", position)
			assert.Equal(t, [BoardSize]Cell{}, board.Cells())
		}
	})

	t.Run("Rejects occupied cell", func(t *testing.T) {
		// Given: a board where cell 0 holds x
		board := NewBoard()
		require.NoError(t, board.PlaceMark(0, MarkX))

		for _, mark := range []Cell{MarkX, MarkO} {
			// When: any mark is placed on the same cell
			err := board.PlaceMark(0, mark)

			// Then: ErrCellOccupied should be returned and the cell keep x
			require.ErrorIs(t, err, apperror.ErrCellOccupied)
			cell, cellErr := board.Cell(0)
			require.NoError(t, cellErr)
			assert.Equal(t, MarkX, cell)
		}
	})

	t.Run("Rejects empty mark", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: an empty mark is placed
		err := board.PlaceMark(3, EmptyCell)

		// Then: ErrInvalidMark should be returned
		require.ErrorIs(t, err, ErrInvalidMark)
		assert.Equal(t, [BoardSize]Cell{}, board.Cells())
	})
}

func TestBoard_IsWinner(t *testing.T) {
	t.Run("Every winning line is detected", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, mark := range []Cell{MarkX, MarkO} {
				// Given: a board where mark fills one line
				board := NewBoard()
				for _, position := range combo {
					require.NoError(t, board.PlaceMark(position, mark))
				}

				// Then: mark should win and nobody else
				assert.True(t, board.IsWinner(mark), "combo %v", combo)
				assert.False(t, board.IsWinner(opposite(mark)), "combo %v", combo)
				assert.False(t, board.IsWinner(EmptyCell), "combo %v", combo)
			}
		}
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		board := NewBoard()

		for _, mark := range []Cell{EmptyCell, MarkX, MarkO} {
			assert.False(t, board.IsWinner(mark))
		}
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		// Given: a top row of x, o, x
		board := NewBoard()
		require.NoError(t, board.PlaceMark(0, MarkX))
		require.NoError(t, board.PlaceMark(1, MarkO))
		require.NoError(t, board.PlaceMark(2, MarkX))

		// Then: no one should win
		assert.False(t, board.IsWinner(MarkX))
		assert.False(t, board.IsWinner(MarkO))
	})

	t.Run("Full board without a line", func(t *testing.T) {
		// Given: a drawn board
		board := NewBoard()
		marks := [BoardSize]Cell{
			MarkX, MarkO, MarkX,
			MarkX, MarkO, MarkO,
			MarkO, MarkX, MarkX,
		}
		for position, mark := range marks {
			require.NoError(t, board.PlaceMark(position, mark))
		}

		// Then: the board should be full with no winner
		assert.True(t, board.IsFull())
		assert.False(t, board.IsWinner(MarkX))
		assert.False(t, board.IsWinner(MarkO))
	})
}

func TestBoard_Cell(t *testing.T) {
	board := NewBoard()

	_, err := board.Cell(9)
	require.ErrorIs(t, err, ErrInvalidPosition)

	cell, err := board.Cell(8)
	require.NoError(t, err)
	assert.Equal(t, EmptyCell, cell)
}

func opposite(mark Cell) Cell {
	if mark == MarkX {
		return MarkO
	}
	return MarkX
}
