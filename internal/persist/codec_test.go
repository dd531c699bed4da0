package persist

import (
	"errors"
	"testing"

	"ltask/internal/service"
)

func TestDecode_Corrupt(t *testing.T) {
	cases := map[string]string{
		"empty":          ``,
		"blank":          "  \n",
		"not json":       `tasks`,
		"object":         `{"id":1,"text":"a"}`,
		"scalar items":   `[1,2,3]`,
		"string id":      `[{"id":"1","text":"a"}]`,
		"fractional id":  `[{"id":1.5,"text":"a"}]`,
		"missing id":     `[{"text":"a"}]`,
		"null id":        `[{"id":null,"text":"a"}]`,
		"duplicate id":   `[{"id":1,"text":"a"},{"id":1,"text":"b"}]`,
		"empty text":     `[{"id":1,"text":""}]`,
		"blank text":     `[{"id":1,"text":"   "}]`,
		"missing text":   `[{"id":1}]`,
		"non-bool done":  `[{"id":1,"text":"a","done":"yes"}]`,
		"truncated list": `[{"id":1,"text":"a"}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc))
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}

func TestDecode_Null(t *testing.T) {
	tasks, err := Decode([]byte("null"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %+v", tasks)
	}
}

func TestDecode_LegacyIsEditing(t *testing.T) {
	doc := `[{"id":1717000000000,"text":"old","done":false,"isEditing":true}]`

	tasks, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := service.Task{ID: 1717000000000, Text: "old", Editing: true}
	if len(tasks) != 1 || tasks[0] != want {
		t.Errorf("expected %+v, got %+v", want, tasks)
	}

	// The legacy key is read but never written back.
	out, err := Encode(tasks)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := string(out); got != `[{"id":1717000000000,"text":"old","done":false,"editing":true}]` {
		t.Errorf("unexpected encoding: %s", got)
	}
}

func TestDecode_MissingFlagsDefaultFalse(t *testing.T) {
	tasks, err := Decode([]byte(`[{"id":7,"text":"a"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tasks[0].Done || tasks[0].Editing {
		t.Errorf("expected flags to default to false, got %+v", tasks[0])
	}
}

func TestEncode_Empty(t *testing.T) {
	for _, in := range [][]service.Task{nil, {}} {
		out, err := Encode(in)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if string(out) != "[]" {
			t.Errorf("expected [], got %s", out)
		}
	}
}
