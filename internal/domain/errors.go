package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrSeatTaken        = errors.New("seat already taken")
	ErrAlreadyUsed      = errors.New("ticket already used")
	ErrConflict         = errors.New("conflicting write")
)
