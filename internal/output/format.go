// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ltask/internal/service"
)

const (
	// EmptyList is printed when there are no tasks.
	EmptyList = "no tasks yet"

	// EditingMarker is appended to tasks in edit mode.
	EditingMarker = "(editing)"
)

// FormatTask formats a task line for the list command.
// Format: "{N:>4}  [x] {TEXT}" with "  (editing)" appended for tasks in edit mode.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s%s\n", num, Checkbox(task.Done), normalizeText(task.Text), editingSuffix(task))
}

// FormatTaskWithID formats a task line that also shows the raw id.
// Format: "{N:>4}  @{ID}  [x] {TEXT}"
func FormatTaskWithID(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  @%d  %s %s%s\n", num, task.ID, Checkbox(task.Done), normalizeText(task.Text), editingSuffix(task))
}

// Checkbox renders the done flag.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// Counts summarizes a task list.
type Counts struct {
	Total   int
	Open    int
	Done    int
	Editing int
}

// Count tallies tasks.
func Count(tasks []service.Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			c.Done++
		} else {
			c.Open++
		}
		if t.Editing {
			c.Editing++
		}
	}
	return c
}

// FormatInfo prints the settings file, storage location and task counts.
func FormatInfo(w io.Writer, settings, backend, location string, c Counts) {
	fmt.Fprintf(w, "settings: %s\n", settings)
	fmt.Fprintf(w, "backend:  %s\n", backend)
	fmt.Fprintf(w, "location: %s\n", location)
	fmt.Fprintf(w, "tasks:    %d (%d open, %d done, %d editing)\n", c.Total, c.Open, c.Done, c.Editing)
}

func editingSuffix(task service.Task) string {
	if task.Editing {
		return "  " + EditingMarker
	}
	return ""
}

// normalizeText keeps a task on one line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
