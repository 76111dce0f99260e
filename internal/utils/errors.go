package utils

import "errors"

// Domain-level errors used by the repository and service layers to
// provide fine-grained failure reasons.
var (
	// ErrNoRowsUpdated signals an Update that matched no stored row,
	// e.g. the entity vanished between a lookup and the update.
	ErrNoRowsUpdated = errors.New("no_rows_updated")
)
