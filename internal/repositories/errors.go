package repositories

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when a batched stock adjustment would
	// drive a product's stock below zero. No line of the batch is applied.
	ErrInsufficientStock = errors.New("insufficient stock")
)
