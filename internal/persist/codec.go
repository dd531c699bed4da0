package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"ltask/internal/service"
)

// record is the stored shape of a task.
type record struct {
	ID      *service.ID `json:"id"`
	Text    string      `json:"text"`
	Done    bool        `json:"done"`
	Editing bool        `json:"editing"`

	// Older documents spell the edit flag "isEditing".
	IsEditing *bool `json:"isEditing,omitempty"`
}

// Encode serializes tasks as a JSON array. An empty list encodes as [].
func Encode(tasks []service.Task) ([]byte, error) {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		id := t.ID
		records = append(records, record{
			ID:      &id,
			Text:    t.Text,
			Done:    t.Done,
			Editing: t.Editing,
		})
	}
	return json.Marshal(records)
}

// Decode parses a stored document. Anything that is not an array of task
// objects with unique numeric ids and non-blank text is reported as
// ErrCorrupt. A JSON null decodes to an empty list.
func Decode(data []byte) ([]service.Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, corruptf("empty document")
	}

	var records []record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, corruptf("%v", err)
	}

	tasks := make([]service.Task, 0, len(records))
	seen := make(map[service.ID]struct{}, len(records))
	for i, r := range records {
		if r.ID == nil {
			return nil, corruptf("task %d: missing id", i)
		}
		if _, dup := seen[*r.ID]; dup {
			return nil, corruptf("task %d: duplicate id %d", i, *r.ID)
		}
		seen[*r.ID] = struct{}{}

		if strings.TrimSpace(r.Text) == "" {
			return nil, corruptf("task %d: empty text", i)
		}

		editing := r.Editing
		if r.IsEditing != nil {
			editing = editing || *r.IsEditing
		}
		tasks = append(tasks, service.Task{
			ID:      *r.ID,
			Text:    r.Text,
			Done:    r.Done,
			Editing: editing,
		})
	}
	return tasks, nil
}

func corruptf(format string, args ...any) error {
	return &CorruptError{Msg: fmt.Sprintf(format, args...)}
}
