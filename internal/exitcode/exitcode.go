// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, empty text).
	UserError = 1

	// StateError indicates the stored task list could not be read back.
	StateError = 2

	// StorageError indicates a storage or configuration failure.
	StorageError = 3
)
