package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultExtensions lists the document extensions DirStore scans by default.
var DefaultExtensions = []string{".md"}

// DirStore is a Store over a directory tree of text files.
// Hidden files and directories (names starting with '.') are skipped.
type DirStore struct {
	root       string
	extensions []string
	locks      sync.Map // document path -> *sync.Mutex
}

// DirOption configures a DirStore.
type DirOption func(*DirStore)

// WithExtensions sets the file extensions treated as documents.
func WithExtensions(exts ...string) DirOption {
	return func(s *DirStore) {
		s.extensions = nil
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions = append(s.extensions, ext)
		}
	}
}

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string, opts ...DirOption) (*DirStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("vault dir is empty")
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve vault dir: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open vault dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault path %s is not a directory", root)
	}

	s := &DirStore{root: root, extensions: DefaultExtensions}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.extensions) == 0 {
		s.extensions = DefaultExtensions
	}
	return s, nil
}

// Root returns the absolute root directory of the store.
func (s *DirStore) Root() string {
	return s.root
}

// Path returns the file path of document id.
func (s *DirStore) Path(id string) (string, error) {
	if id == "" {
		return "", ErrInvalidID
	}
	clean := filepath.Clean(filepath.FromSlash(id))
	if filepath.IsAbs(clean) || clean == "." || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *DirStore) isDocument(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range s.extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// List returns the IDs of all documents in lexical path order.
func (s *DirStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == s.root {
			return nil
		}
		if isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() || !s.isDocument(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		ids = append(ids, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list vault: %w", err)
	}
	return ids, nil
}

// Metadata reads only the front matter of document id.
func (s *DirStore) Metadata(ctx context.Context, id string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.Path(id)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, notFound(id, err)
	}
	defer f.Close()

	meta, err := ReadFrontMatter(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return meta, nil
}

// ReadText returns the text of document id.
func (s *DirStore) ReadText(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.Path(id)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", notFound(id, err)
	}
	return string(data), nil
}

// Commit applies mutate to document id and replaces the file atomically.
// Commits to the same document through this store are serialized. Nothing
// is written when mutate fails or returns the text unchanged.
func (s *DirStore) Commit(ctx context.Context, id string, mutate Mutator) error {
	path, err := s.Path(id)
	if err != nil {
		return err
	}

	mu := s.lock(path)
	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return notFound(id, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return notFound(id, err)
	}

	current := string(data)
	next, err := mutate(current)
	if err != nil {
		return err
	}
	if next == current {
		return nil
	}

	if err := writeFileAtomic(path, []byte(next), info.Mode().Perm()); err != nil {
		return fmt.Errorf("commit %s: %w", id, err)
	}
	return nil
}

func (s *DirStore) lock(path string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// writeFileAtomic writes data to a temp file next to path and renames it
// over path.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir, base := filepath.Split(path)
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func notFound(id string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", id, err)
}
