package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/console"
)

type playerConsole interface {
	ChooseCell() (int, error)
	PrintBoard(board entity.Board) error
	PrintMessage(message string) error
}

// GameManager runs a single game between two players sharing one terminal.
type GameManager struct {
	logger  *slog.Logger
	console playerConsole

	board  entity.Board
	turn   entity.Cell
	gameID string
}

func NewGameManager(logger *slog.Logger, terminal playerConsole) *GameManager {
	gameID := uuid.NewString()

	return &GameManager{
		logger:  logger.With("component", "game_manager", "game_id", gameID),
		console: terminal,

		turn:   entity.PlayerX,
		gameID: gameID,
	}
}

func (that *GameManager) GameID() string {
	return that.gameID
}

// Play runs the game until a win or a draw and returns the final outcome.
// Only input/output failures are returned as errors.
func (that *GameManager) Play(ctx context.Context) (entity.Outcome, error) {
	that.logger.Debug("game started", "first", that.turn)

	if err := that.console.PrintBoard(that.board); err != nil {
		return entity.Outcome{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return entity.Outcome{}, fmt.Errorf("game interrupted: %w", err)
		}

		cell, err := that.chooseCell()
		if err != nil {
			return entity.Outcome{}, err
		}

		if err = tictactoe.ApplyMove(&that.board, cell, that.turn); err != nil {
			if errors.Is(err, apperror.ErrCellOccupied) {
				that.logger.Debug("cell is occupied", "player", that.turn, "cell", cell)
				if err = that.console.PrintMessage(console.OccupiedMessage); err != nil {
					return entity.Outcome{}, err
				}
				continue
			}
			return entity.Outcome{}, fmt.Errorf("failed make turn: %w", err)
		}

		row, col, _ := entity.CellPosition(cell)
		that.logger.Debug("turn made", "player", that.turn, "cell", cell, "row", row, "col", col, "board", that.board.String())

		if err = that.console.PrintBoard(that.board); err != nil {
			return entity.Outcome{}, err
		}

		outcome := tictactoe.Evaluate(that.board)
		if outcome.IsFinished() {
			return outcome, that.finish(outcome)
		}

		that.turn = tictactoe.ToggleMark(that.turn)
	}
}

// chooseCell - keeps asking until the reply is a number from 1 to 9.
func (that *GameManager) chooseCell() (int, error) {
	for {
		cell, err := that.console.ChooseCell()
		if errors.Is(err, apperror.ErrParse) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to choose cell: %w", err)
		}

		if _, err = entity.CellIndex(cell); err != nil {
			that.logger.Debug("cell out of range", "player", that.turn, "cell", cell)
			continue
		}

		return cell, nil
	}
}

func (that *GameManager) finish(outcome entity.Outcome) error {
	that.logger.Debug("game finished", "outcome", outcome.String(), "board", that.board.String())

	message := console.DrawMessage
	if outcome.Status == entity.StatusWin {
		message = console.WinMessage(outcome.Winner)
	}

	if err := that.console.PrintMessage(message); err != nil {
		return fmt.Errorf("failed to announce result: %w", err)
	}

	return nil
}
