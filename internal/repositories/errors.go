package repositories

import "errors"

// ErrNotFound is returned when no record in a collection matches the given
// identifier. Callers test for it with errors.Is.
var ErrNotFound = errors.New("record not found")
