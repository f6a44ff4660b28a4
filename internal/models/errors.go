package models

import "errors"

// ErrRecordNotFound is returned by every store implementation when a lookup misses.
var ErrRecordNotFound = errors.New("record not found")

// ErrConflict is returned when a conditional write finds the record changed
// since it was read.
var ErrConflict = errors.New("record changed concurrently")
