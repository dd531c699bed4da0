// Package tasklist implements the in-memory task list and the store that keeps
// it persisted.
package tasklist

import (
	"strings"
	"unicode/utf8"

	"ltask/internal/service"
)

// List is the ordered task list, newest first. It knows nothing about
// persistence; every method reports whether it changed anything.
type List struct {
	tasks []service.Task
	ids   *IDSource
}

// NewList creates a list holding tasks in the given order. The id source is
// advanced past every id already present.
func NewList(tasks []service.Task, ids *IDSource) *List {
	if ids == nil {
		ids = NewIDSource(nil)
	}
	l := &List{
		tasks: make([]service.Task, len(tasks)),
		ids:   ids,
	}
	copy(l.tasks, tasks)
	for _, t := range l.tasks {
		ids.Observe(t.ID)
	}
	return l
}

// Tasks returns a copy of the list.
func (l *List) Tasks() []service.Task {
	out := make([]service.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// Find returns the task with id.
func (l *List) Find(id service.ID) (service.Task, bool) {
	if i := l.index(id); i >= 0 {
		return l.tasks[i], true
	}
	return service.Task{}, false
}

// CleanText trims raw and reports whether it is acceptable task text: not
// blank and valid UTF-8, so it survives a JSON round trip unchanged.
func CleanText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" || !utf8.ValidString(text) {
		return "", false
	}
	return text, true
}

// Add prepends a task with the cleaned text. Unacceptable text is rejected.
func (l *List) Add(raw string) (service.Task, bool) {
	text, ok := CleanText(raw)
	if !ok {
		return service.Task{}, false
	}
	t := service.Task{ID: l.ids.Next(), Text: text}
	l.tasks = append([]service.Task{t}, l.tasks...)
	return t, true
}

// ToggleDone flips the done flag.
func (l *List) ToggleDone(id service.ID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Done = !l.tasks[i].Done
	return true
}

// Delete removes the task.
func (l *List) Delete(id service.ID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i:i], l.tasks[i+1:]...)
	return true
}

// BeginEdit sets the edit flag. Other tasks may already be in edit mode and
// are left alone.
func (l *List) BeginEdit(id service.ID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Editing = true
	return true
}

// SaveEdit commits the cleaned text and clears the edit flag. Unacceptable
// text is rejected and the task keeps its text and edit flag.
func (l *List) SaveEdit(id service.ID, raw string) bool {
	text, ok := CleanText(raw)
	if !ok {
		return false
	}
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Text = text
	l.tasks[i].Editing = false
	return true
}

// CancelEdit clears the edit flag, keeping the text.
func (l *List) CancelEdit(id service.ID) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Editing = false
	return true
}

func (l *List) index(id service.ID) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
