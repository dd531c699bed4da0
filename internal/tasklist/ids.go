package tasklist

import (
	"time"

	"ltask/internal/service"
)

// IDSource hands out task ids derived from the wall clock in milliseconds.
// Ids are strictly increasing: two calls in the same millisecond, or a clock
// that steps backwards, still yield distinct ascending ids.
type IDSource struct {
	now  func() time.Time
	last service.ID
}

// NewIDSource creates a source reading now. A nil now uses time.Now.
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Observe records an id that is already in use so Next never returns it.
func (s *IDSource) Observe(id service.ID) {
	if id > s.last {
		s.last = id
	}
}

// Next returns a fresh id.
func (s *IDSource) Next() service.ID {
	id := service.ID(s.now().UnixMilli())
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
