package domain

import "errors"

// ErrTodoNotFound covers both a genuinely missing todo and one owned by a
// different user; the two cases are deliberately indistinguishable.
var ErrTodoNotFound = errors.New("todo not found")

// Todo is a single task owned by exactly one user. OwnerID is always derived
// server-side from the authenticated identity, never taken from client input.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	OwnerID   int64  `json:"owner_id"`
}
