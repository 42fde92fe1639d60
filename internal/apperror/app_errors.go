package apperror

import "errors"

var (
	ErrParse        = errors.New("input is not a non-negative integer")
	ErrInvalidCell  = errors.New("invalid cell number")
	ErrInvalidMark  = errors.New("invalid player mark")
	ErrCellOccupied = errors.New("cell is already occupied")
)
