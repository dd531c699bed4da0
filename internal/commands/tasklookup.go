package commands

import (
	"fmt"

	"ltask/internal/service"
)

// resolveTaskRef finds the task a reference points at in a snapshot.
func resolveTaskRef(tasks []service.Task, ref TaskRef) (service.Task, error) {
	if ref.ByID {
		for _, t := range tasks {
			if t.ID == ref.ID {
				return t, nil
			}
		}
		return service.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref.Raw)
	}
	if ref.Pos < 1 || ref.Pos > len(tasks) {
		return service.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref.Raw)
	}
	return tasks[ref.Pos-1], nil
}

// resolveTaskRefs resolves every reference against one snapshot, so positions
// stay meaningful while the caller mutates tasks one after another.
// Duplicate references collapse to one id.
func resolveTaskRefs(tasks []service.Task, refs []TaskRef) ([]service.ID, error) {
	ids := make([]service.ID, 0, len(refs))
	seen := make(map[service.ID]bool, len(refs))
	for _, ref := range refs {
		t, err := resolveTaskRef(tasks, ref)
		if err != nil {
			return nil, err
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		ids = append(ids, t.ID)
	}
	return ids, nil
}
