package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Cell is the content of one square: empty or a player's mark.
type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

const (
	StatusOngoing = "ongoing"
	StatusWin     = "win"
	StatusDraw    = "draw"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide

	MinCellNumber = 1
	MaxCellNumber = BoardSize
)

// Board is the 3x3 grid stored row-major.
type Board [BoardSize]Cell

// Outcome is derived from a board after every move and never stored.
type Outcome struct {
	Status string
	Winner Cell
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Win(mark Cell) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return "win:" + string(that.Winner)
	case StatusDraw:
		return StatusDraw
	default:
		return StatusOngoing
	}
}

// IsMark reports whether the cell holds a player's mark.
func (that Cell) IsMark() bool {
	return that == PlayerX || that == PlayerO
}

// Symbol - single character used when the board is printed.
func (that Cell) Symbol() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}

// CellIndex maps a cell number 1..9 to its position in the flat board.
func CellIndex(number int) (int, error) {
	if number < MinCellNumber || number > MaxCellNumber {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, number)
	}
	return number - 1, nil
}

// CellPosition maps a cell number 1..9 to its row and column.
func CellPosition(number int) (int, int, error) {
	index, err := CellIndex(number)
	if err != nil {
		return 0, 0, err
	}
	return index / BoardSide, index % BoardSide, nil
}

func (that Board) At(row, col int) Cell {
	return that[row*BoardSide+col]
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}
		if i%BoardSide == BoardSide-1 && i != BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
