package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	CellPrompt      = "Please enter a number between 1 and 9: "
	OccupiedMessage = "This field is occupied!"
	DrawMessage     = "Field is full!"
)

// Console talks to the players over a line-oriented terminal.
type Console struct {
	logger *slog.Logger

	in  *bufio.Reader
	out io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// ChooseCell prompts for a cell and parses the reply. Range checks are left to the caller.
func (that *Console) ChooseCell() (int, error) {
	if _, err := io.WriteString(that.out, CellPrompt); err != nil {
		return 0, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := that.readLine()
	if err != nil {
		return 0, err
	}

	number, err := ParseCellNumber(line)
	if err != nil {
		that.logger.Debug("rejected input", "input", line, "error", err)
		return 0, err
	}

	return number, nil
}

func (that *Console) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if err != nil {
		// the last line may arrive without a trailing newline
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}

// ParseCellNumber accepts a non-negative integer, optionally signed with a single
// leading '+', surrounded by optional whitespace.
func ParseCellNumber(input string) (int, error) {
	text := strings.TrimSpace(input)

	digits := text
	if len(digits) > 1 && digits[0] == '+' && digits[1] >= '0' && digits[1] <= '9' {
		digits = digits[1:]
	}

	number, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrParse, text)
	}

	return int(number), nil
}

// RenderBoard - formats the board as three rows split by separator lines.
func RenderBoard(board entity.Board) string {
	rows := make([]string, 0, entity.BoardSide)
	for row := range entity.BoardSide {
		rows = append(rows, fmt.Sprintf("%s | %s | %s\n",
			board.At(row, 0).Symbol(), board.At(row, 1).Symbol(), board.At(row, 2).Symbol()))
	}

	return strings.Join(rows, "--+---+--\n")
}

func (that *Console) PrintBoard(board entity.Board) error {
	if _, err := io.WriteString(that.out, RenderBoard(board)); err != nil {
		return fmt.Errorf("failed to print board: %w", err)
	}
	return nil
}

func (that *Console) PrintMessage(message string) error {
	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to print message: %w", err)
	}
	return nil
}

// WinMessage - announcement printed when mark completes a line.
func WinMessage(mark entity.Cell) string {
	return fmt.Sprintf("Player %s wins", mark)
}
