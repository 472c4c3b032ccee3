package contract

import "errors"

// ErrDuplicateKey is returned by Create when a unique index rejects the row.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNotFound is returned by Update and Delete when no row has the given id.
var ErrNotFound = errors.New("record not found")
