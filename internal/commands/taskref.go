package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"ltask/internal/service"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Raw  string     // the argument as typed
	Pos  int        // 1-based position in the listing; 0 when ByID
	ID   service.ID // raw task id when ByID
	ByID bool       // true for "@<id>" references
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrTaskNotFound indicates a reference that matches no task.
var ErrTaskNotFound = errors.New("task not found")

// ParseTaskRef parses one task reference.
//
// Parsing rules:
// 1. All digits -> position in the current listing (1 is the newest task)
// 2. "@" followed by digits -> raw task id
// 3. Otherwise -> error: invalid task reference: <ref>
func ParseTaskRef(arg string) (TaskRef, error) {
	if arg == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	if isAllDigits(arg) {
		pos, err := strconv.Atoi(arg)
		if err != nil || pos < 1 {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Raw: arg, Pos: pos}, nil
	}

	if len(arg) > 1 && arg[0] == '@' && isAllDigits(arg[1:]) {
		id, err := strconv.ParseInt(arg[1:], 10, 64)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Raw: arg, ID: service.ID(id), ByID: true}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// ParseTaskRefs parses every argument as a task reference.
func ParseTaskRefs(args []string) ([]TaskRef, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	refs := make([]TaskRef, 0, len(args))
	for _, arg := range args {
		ref, err := ParseTaskRef(arg)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
