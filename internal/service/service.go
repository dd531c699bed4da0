// Package service defines the contract the presentation layer uses to read and
// mutate the task list.
package service

import "context"

// Service defines the task list operations available to commands and the TUI.
// Commands never touch storage directly.
//
// Mutating calls report whether they were applied. A false result means the
// input was rejected (empty text) or the id was not found; neither is an error.
// The returned error is reserved for persistence failures.
type Service interface {
	// Tasks returns a snapshot of the list, newest first.
	Tasks() []Task

	// AddTask trims text and prepends a new task. Empty text is rejected.
	AddTask(ctx context.Context, text string) (Task, bool, error)

	// ToggleDone flips the done flag of the task.
	ToggleDone(ctx context.Context, id ID) (bool, error)

	// DeleteTask removes the task.
	DeleteTask(ctx context.Context, id ID) (bool, error)

	// BeginEdit puts the task into edit mode. Other tasks keep their mode.
	BeginEdit(ctx context.Context, id ID) (bool, error)

	// SaveEdit trims text and commits it, leaving edit mode.
	// Empty text is rejected and the task stays in edit mode.
	SaveEdit(ctx context.Context, id ID, text string) (bool, error)

	// CancelEdit leaves edit mode without changing the text.
	CancelEdit(ctx context.Context, id ID) (bool, error)

	// Close releases the underlying storage.
	Close() error
}
