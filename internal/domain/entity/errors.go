package entity

import "errors"

var (
	ErrItemNotFound        = errors.New("item not found")
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrPersistence         = errors.New("persistence failure")
	ErrInvalidAction       = errors.New("invalid vote action")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidClientToken  = errors.New("invalid client token")
)
