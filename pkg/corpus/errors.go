package corpus

import "errors"

// Package-specific errors
var (
	// ErrReservedTheme is returned when registering a theme whose name
	// collides with a built-in corpus.
	ErrReservedTheme = errors.New("theme name is reserved by a built-in corpus")

	// ErrEmptyCorpus is returned when registering a theme with no words.
	ErrEmptyCorpus = errors.New("corpus must contain at least one word")

	// ErrInvalidCorpus is returned when a corpus definition cannot be parsed.
	ErrInvalidCorpus = errors.New("invalid corpus definition")
)
