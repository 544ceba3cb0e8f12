package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const BoardSize = 9

var (
	ErrInvalidPosition = errors.New("invalid cell position")

	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{6, 4, 2},
	}
)

// Board is the 3x3 grid, stored row-major.
type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	board := &Board{}
	board.Init()

	return board
}

// Init - clears every cell.
func (that *Board) Init() {
	for i := range that.cells {
		that.cells[i] = EmptyCell
	}
}

// PlaceMark - puts mark on an empty cell. The board is left untouched on error.
func (that *Board) PlaceMark(position int, mark Cell) error {
	if !isValidPosition(position) {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}

	if mark.IsEmpty() {
		return ErrInvalidMark
	}

	if !that.cells[position].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.cells[position] = mark

	return nil
}

// IsWinner - reports whether mark fills any of the winning lines.
func (that *Board) IsWinner(mark Cell) bool {
	if mark.IsEmpty() {
		return false
	}

	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a == mark && b == mark && c == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

func (that *Board) Cell(position int) (Cell, error) {
	if !isValidPosition(position) {
		return EmptyCell, fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}

	return that.cells[position], nil
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [BoardSize]Cell {
	return that.cells
}

func isValidPosition(position int) bool {
	return position >= 0 && position < BoardSize
}
