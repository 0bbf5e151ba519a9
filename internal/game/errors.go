package game

import "errors"

var (
	ErrCatalogTooSmall = errors.New("catalog has fewer plants than the shelves hold")
	ErrTooFewDisplayed = errors.New("need at least 3 displayed plants to start the missing-plant stage")
	ErrDecoyMismatch   = errors.New("catalog minus displayed plants must leave exactly 2 decoys")
	ErrNotReady        = errors.New("stage has not been initialized")
	ErrUnknownChoice   = errors.New("not one of the offered choices")
)
