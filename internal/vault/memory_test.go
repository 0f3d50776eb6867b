package vault

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.Put("b.md", "---\nis-task-board: true\n---\n## Todo\n")
	m.Put("a.md", "plain")
	m.Put("b.md", "---\nis-task-board: true\n---\n## Doing\n")

	ids, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "b.md" || ids[1] != "a.md" {
		t.Fatalf("List = %v, want [b.md a.md]", ids)
	}

	meta, err := m.Metadata(ctx, "b.md")
	if err != nil {
		t.Fatalf("Metadata error = %v", err)
	}
	if meta["is-task-board"] != true {
		t.Errorf("Metadata = %v, want is-task-board true", meta)
	}

	text, err := m.ReadText(ctx, "b.md")
	if err != nil {
		t.Fatalf("ReadText error = %v", err)
	}
	if text != "---\nis-task-board: true\n---\n## Doing\n" {
		t.Errorf("ReadText = %q", text)
	}

	if _, err := m.ReadText(ctx, "missing.md"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadText missing error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreCommit(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.Put("a.md", "one")

	if err := m.Commit(ctx, "a.md", func(cur string) (string, error) {
		return cur + " two", nil
	}); err != nil {
		t.Fatalf("Commit error = %v", err)
	}
	if got, _ := m.ReadText(ctx, "a.md"); got != "one two" {
		t.Errorf("text = %q, want %q", got, "one two")
	}

	boom := errors.New("boom")
	if err := m.Commit(ctx, "a.md", func(string) (string, error) {
		return "lost", boom
	}); !errors.Is(err, boom) {
		t.Fatalf("Commit error = %v, want boom", err)
	}
	if got, _ := m.ReadText(ctx, "a.md"); got != "one two" {
		t.Errorf("text after failed commit = %q", got)
	}

	if err := m.Commit(ctx, "nope.md", func(s string) (string, error) { return s, nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Commit missing error = %v, want ErrNotFound", err)
	}
}
