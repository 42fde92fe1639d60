package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// WinCombos lists every line in the order it is checked: rows, columns, diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ApplyMove puts mark on the cell numbered 1..9. The board is left untouched on error.
func ApplyMove(board *entity.Board, cellNumber int, mark entity.Cell) error {
	index, err := validateMove(board, cellNumber, mark)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	board[index] = mark

	return nil
}

// validateMove - checks if the move is valid and returns the flat board index.
func validateMove(board *entity.Board, cellNumber int, mark entity.Cell) (int, error) {
	index, err := entity.CellIndex(cellNumber)
	if err != nil {
		return 0, err
	}

	if !mark.IsMark() {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if board[index] != entity.EmptyCell {
		return 0, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cellNumber)
	}

	return index, nil
}

// Evaluate recomputes the outcome from scratch. The first completed line wins.
func Evaluate(board entity.Board) entity.Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Win(a)
		}
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.Ongoing()
}

func ToggleMark(currentMark entity.Cell) entity.Cell {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
