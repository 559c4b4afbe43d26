package constants

const (
	ErrUnexpected   = "Unexpected error"
	ErrInvalidID    = "Invalid id"
	ErrInvalidInput = "Invalid input"
)
