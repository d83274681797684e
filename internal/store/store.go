// Package store is the only layer that talks to the database. Each method is
// a single round-trip; there are no transactions spanning entities.
package store

import "errors"

// ErrNotFound is returned when a lookup, update or delete matched no row.
var ErrNotFound = errors.New("not found")
