package store

import "errors"

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCorruptCollection  = errors.New("collection payload is not valid JSON")
)
