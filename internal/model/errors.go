package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Word list errors
	ErrWordListUnavailable = errors.New("word list unavailable")
	ErrWordListEmpty       = errors.New("word list is empty")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// ErrRejected matches every *RejectionError via errors.Is
	ErrRejected = errors.New("word rejected")
)
