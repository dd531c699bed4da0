package tasklist

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"ltask/internal/service"
)

// Persister loads and saves the whole task list.
type Persister interface {
	Load(ctx context.Context) ([]service.Task, error)
	Save(ctx context.Context, tasks []service.Task) error
}

// Store owns the task list for the lifetime of the process and writes it back
// after every mutation. It implements service.Service.
//
// Store is not safe for concurrent use.
type Store struct {
	list   *List
	p      Persister
	closer io.Closer
	log    *slog.Logger
}

var _ service.Service = (*Store)(nil)

// Options configures Open.
type Options struct {
	// IDs generates task ids. Nil uses the wall clock.
	IDs *IDSource

	// Closer is closed by Close, typically the underlying key-value store.
	Closer io.Closer

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// Open loads the persisted list once and returns a store over it.
func Open(ctx context.Context, p Persister, opts Options) (*Store, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tasks, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded tasks", "count", len(tasks))
	return &Store{
		list:   NewList(tasks, opts.IDs),
		p:      p,
		closer: opts.Closer,
		log:    log,
	}, nil
}

// Tasks implements service.Service.
func (s *Store) Tasks() []service.Task { return s.list.Tasks() }

// Find returns the task with id.
func (s *Store) Find(id service.ID) (service.Task, bool) { return s.list.Find(id) }

// AddTask implements service.Service. Rejected input is not written.
func (s *Store) AddTask(ctx context.Context, text string) (service.Task, bool, error) {
	t, ok := s.list.Add(text)
	if !ok {
		s.log.Debug("rejected task text")
		return service.Task{}, false, nil
	}
	return t, true, s.save(ctx, "add", t.ID)
}

// ToggleDone implements service.Service.
func (s *Store) ToggleDone(ctx context.Context, id service.ID) (bool, error) {
	ok := s.list.ToggleDone(id)
	return ok, s.save(ctx, "toggle", id)
}

// DeleteTask implements service.Service.
func (s *Store) DeleteTask(ctx context.Context, id service.ID) (bool, error) {
	ok := s.list.Delete(id)
	return ok, s.save(ctx, "delete", id)
}

// BeginEdit implements service.Service.
func (s *Store) BeginEdit(ctx context.Context, id service.ID) (bool, error) {
	ok := s.list.BeginEdit(id)
	return ok, s.save(ctx, "begin-edit", id)
}

// SaveEdit implements service.Service. Rejected input is not written.
func (s *Store) SaveEdit(ctx context.Context, id service.ID, text string) (bool, error) {
	if _, valid := CleanText(text); !valid {
		s.log.Debug("rejected edit text", "id", id)
		return false, nil
	}
	ok := s.list.SaveEdit(id, text)
	return ok, s.save(ctx, "save-edit", id)
}

// CancelEdit implements service.Service.
func (s *Store) CancelEdit(ctx context.Context, id service.ID) (bool, error) {
	ok := s.list.CancelEdit(id)
	return ok, s.save(ctx, "cancel-edit", id)
}

// Close implements service.Service.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *Store) save(ctx context.Context, op string, id service.ID) error {
	if err := s.p.Save(ctx, s.list.Tasks()); err != nil {
		s.log.Debug("save failed", "op", op, "id", id, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("saved tasks", "op", op, "id", id, "count", s.list.Len())
	return nil
}
