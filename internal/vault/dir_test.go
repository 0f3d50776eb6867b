package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

func newTestStore(t *testing.T, opts ...DirOption) (*DirStore, string) {
	t.Helper()
	root := t.TempDir()
	s, err := NewDirStore(root, opts...)
	if err != nil {
		t.Fatalf("NewDirStore error = %v", err)
	}
	return s, root
}

func TestNewDirStoreErrors(t *testing.T) {
	if _, err := NewDirStore(""); err == nil {
		t.Error("NewDirStore(\"\") should fail")
	}
	root := t.TempDir()
	file := writeFile(t, root, "file.md", "x")
	if _, err := NewDirStore(file); err == nil {
		t.Error("NewDirStore(file) should fail")
	}
	if _, err := NewDirStore(filepath.Join(root, "missing")); err == nil {
		t.Error("NewDirStore(missing) should fail")
	}
}

func TestDirStoreList(t *testing.T) {
	s, root := newTestStore(t)
	writeFile(t, root, "b.md", "b")
	writeFile(t, root, "a.md", "a")
	writeFile(t, root, "notes/c.MD", "c")
	writeFile(t, root, "notes/image.png", "png")
	writeFile(t, root, ".obsidian/workspace.md", "hidden")
	writeFile(t, root, ".hidden.md", "hidden")

	ids, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	want := []string{"a.md", "b.md", "notes/c.MD"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("List = %v, want %v", ids, want)
	}
}

func TestDirStoreListExtensions(t *testing.T) {
	s, root := newTestStore(t, WithExtensions("markdown", ".TXT"))
	writeFile(t, root, "a.md", "a")
	writeFile(t, root, "b.markdown", "b")
	writeFile(t, root, "c.txt", "c")

	ids, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if strings.Join(ids, ",") != "b.markdown,c.txt" {
		t.Errorf("List = %v, want [b.markdown c.txt]", ids)
	}
}

func TestDirStoreListCancelled(t *testing.T) {
	s, root := newTestStore(t)
	writeFile(t, root, "a.md", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.List(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("List error = %v, want context.Canceled", err)
	}
}

func TestDirStorePath(t *testing.T) {
	s, root := newTestStore(t)

	got, err := s.Path("notes/board.md")
	if err != nil {
		t.Fatalf("Path error = %v", err)
	}
	if want := filepath.Join(root, "notes", "board.md"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}

	for _, id := range []string{"", ".", "..", "../outside.md", "a/../../outside.md", "/etc/passwd"} {
		if _, err := s.Path(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Path(%q) error = %v, want ErrInvalidID", id, err)
		}
	}
}

func TestDirStoreReadAndMetadata(t *testing.T) {
	s, root := newTestStore(t)
	writeFile(t, root, "board.md", "---\nis-task-board: true\n---\n## Todo\n")
	ctx := context.Background()

	meta, err := s.Metadata(ctx, "board.md")
	if err != nil {
		t.Fatalf("Metadata error = %v", err)
	}
	if meta["is-task-board"] != true {
		t.Errorf("Metadata = %v", meta)
	}

	text, err := s.ReadText(ctx, "board.md")
	if err != nil {
		t.Fatalf("ReadText error = %v", err)
	}
	if !strings.HasSuffix(text, "## Todo\n") {
		t.Errorf("ReadText = %q", text)
	}

	if _, err := s.ReadText(ctx, "missing.md"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadText missing error = %v, want ErrNotFound", err)
	}
	if _, err := s.Metadata(ctx, "missing.md"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Metadata missing error = %v, want ErrNotFound", err)
	}
}

func TestDirStoreCommit(t *testing.T) {
	s, root := newTestStore(t)
	path := writeFile(t, root, "board.md", "## Todo\n")
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	ctx := context.Background()

	err := s.Commit(ctx, "board.md", func(cur string) (string, error) {
		return cur + "- [ ] Task\n", nil
	})
	if err != nil {
		t.Fatalf("Commit error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "## Todo\n- [ ] Task\n" {
		t.Errorf("content = %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("perm = %v, want 0600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestDirStoreCommitMutatorError(t *testing.T) {
	s, root := newTestStore(t)
	path := writeFile(t, root, "board.md", "## Todo\n")

	boom := errors.New("boom")
	err := s.Commit(context.Background(), "board.md", func(string) (string, error) {
		return "garbage", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Commit error = %v, want boom", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "## Todo\n" {
		t.Errorf("content = %q, want unchanged", data)
	}
}

func TestDirStoreCommitMissing(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Commit(context.Background(), "missing.md", func(cur string) (string, error) {
		return cur, nil
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Commit error = %v, want ErrNotFound", err)
	}
}

func TestDirStoreCommitConcurrent(t *testing.T) {
	s, root := newTestStore(t)
	path := writeFile(t, root, "board.md", "")
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Commit(ctx, "board.md", func(cur string) (string, error) {
				return cur + "x\n", nil
			}); err != nil {
				t.Errorf("Commit error = %v", err)
			}
		}()
	}
	wg.Wait()

	data, _ := os.ReadFile(path)
	if got := strings.Count(string(data), "x\n"); got != n {
		t.Errorf("lines = %d, want %d", got, n)
	}
}
