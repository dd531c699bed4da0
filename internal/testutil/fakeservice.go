// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"ltask/internal/service"
	"ltask/internal/tasklist"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It applies the same rules as the real store but never persists, and records
// how many writes the real store would have issued.
type FakeService struct {
	mu     sync.Mutex
	tasks  []service.Task
	nextID service.ID

	// Saves counts operations that would have written storage.
	Saves int

	// Closed is set by Close.
	Closed bool

	// Error injection for testing. SaveErr is returned by every operation
	// that would write, after the in-memory change is applied.
	SaveErr  error
	CloseErr error
}

// NewFakeService creates an empty FakeService. Ids start at 1.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// Seed appends a task at the end of the list, bypassing validation.
func (f *FakeService) Seed(id service.ID, text string, done bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Text: text, Done: done})
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

// Task returns the task with id.
func (f *FakeService) Task(id service.ID) (service.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.index(id)
	if i < 0 {
		return service.Task{}, false
	}
	return f.tasks[i], true
}

// Tasks implements service.Service.
func (f *FakeService) Tasks() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, text string) (service.Task, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	text, ok := tasklist.CleanText(text)
	if !ok {
		return service.Task{}, false, nil
	}
	t := service.Task{ID: f.nextID, Text: text}
	f.nextID++
	f.tasks = append([]service.Task{t}, f.tasks...)
	return t, true, f.save()
}

// ToggleDone implements service.Service.
func (f *FakeService) ToggleDone(ctx context.Context, id service.ID) (bool, error) {
	return f.update(id, func(t *service.Task) { t.Done = !t.Done })
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id service.ID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.index(id)
	if i >= 0 {
		f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	}
	return i >= 0, f.save()
}

// BeginEdit implements service.Service.
func (f *FakeService) BeginEdit(ctx context.Context, id service.ID) (bool, error) {
	return f.update(id, func(t *service.Task) { t.Editing = true })
}

// SaveEdit implements service.Service.
func (f *FakeService) SaveEdit(ctx context.Context, id service.ID, text string) (bool, error) {
	text, ok := tasklist.CleanText(text)
	if !ok {
		return false, nil
	}
	return f.update(id, func(t *service.Task) {
		t.Text = text
		t.Editing = false
	})
}

// CancelEdit implements service.Service.
func (f *FakeService) CancelEdit(ctx context.Context, id service.ID) (bool, error) {
	return f.update(id, func(t *service.Task) { t.Editing = false })
}

// Close implements service.Service.
func (f *FakeService) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return f.CloseErr
}

func (f *FakeService) update(id service.ID, fn func(*service.Task)) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.index(id)
	if i >= 0 {
		fn(&f.tasks[i])
	}
	return i >= 0, f.save()
}

func (f *FakeService) save() error {
	f.Saves++
	return f.SaveErr
}

func (f *FakeService) index(id service.ID) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
