// Package store keeps mounted portfolio screens in memory.
package store

import "errors"

// ErrNotFound is returned when a screen is not mounted, or was unmounted after expiring.
var ErrNotFound = errors.New("screen not found")
