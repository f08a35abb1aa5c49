package localerrors

import (
	"errors"
)

var (
	ErrDivisionByZero       = errors.New("cannot divide by zero")
	ErrResultOutOfRange     = errors.New("result out of range")
	ErrUnknownOperation     = errors.New("unknown operation")
	ErrInvalidCharacter     = errors.New("invalid character")
	ErrUnknownKey           = errors.New("unknown key")
	ErrHistoryEntryNotFound = errors.New("history entry not found")
	ErrCorruptHistory       = errors.New("corrupt history")
	ErrInvalidToken         = errors.New("invalid token")
)
