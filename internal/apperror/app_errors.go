package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrUnknownAction   = errors.New("unknown action")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownCommand  = errors.New("unknown command")
)
