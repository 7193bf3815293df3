// Package repository defines the error contract shared by the per-entity
// repository packages underneath it.
package repository

import "errors"

var (
	// ErrInvalidID is returned when an identifier is not a valid ObjectID
	// hex string. Distinct from ErrNotFound: the caller sent garbage.
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound is returned when a well-formed identifier matches no
	// document, on operations that check the match count.
	ErrNotFound = errors.New("not found")
)
