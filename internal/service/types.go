// Package service defines the contract the presentation layer uses to read and
// mutate the task list.
package service

// ID identifies a task. IDs are unique and increase in creation order.
type ID int64

// Task represents a single task item.
type Task struct {
	ID      ID
	Text    string
	Done    bool
	Editing bool // transient edit mode; persisted but carries no meaning across runs
}
