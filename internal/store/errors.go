// Package store owns the workshop's mutable state: users, inventory,
// service jobs, notifications, and the transaction ledger. All
// mutations go through one mutex so coordinated writes land
// both-or-neither.
package store

import "errors"

// ErrNotFound is returned when an id does not resolve to an existing
// entity. Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrInsufficientStock is returned when a decrement would drive an
// item's stock below zero. The stock is left untouched. Handlers
// translate this into an HTTP 422 response.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrValidation is returned when a required field is missing or
// malformed. Handlers translate this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")
