package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

// RunApp - plays one game over the given streams.
func RunApp(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	terminal := console.New(logger, in, out)
	gameManager := usecase.NewGameManager(logger, terminal)

	log.Debug("Starting game", "game_id", gameManager.GameID())

	outcome, err := gameManager.Play(ctx)
	if err != nil {
		return fmt.Errorf("game %s aborted: %w", gameManager.GameID(), err)
	}

	log.Debug("Game over", "game_id", gameManager.GameID(), "outcome", outcome.String())

	return nil
}
