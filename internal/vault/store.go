// Package vault provides access to the documents that may hold boards.
//
// Documents are addressed by an opaque ID. DirStore uses the slash-separated
// path relative to its root directory; MemoryStore uses whatever IDs it is
// given. Store.Commit is the only write path: it runs a Mutator on the
// current text and replaces the document with the result in one step.
package vault

import (
	"context"
	"errors"
)

// Mutator computes the new text of a document from its current text.
// Returning an error aborts the commit and leaves the document unchanged.
type Mutator func(current string) (string, error)

// Store is a collection of text documents with front matter metadata.
type Store interface {
	// List returns document IDs in a stable order.
	List(ctx context.Context) ([]string, error)
	// Metadata returns the front matter of a document. Documents without
	// front matter yield an empty map.
	Metadata(ctx context.Context, id string) (map[string]any, error)
	// ReadText returns the full text of a document.
	ReadText(ctx context.Context, id string) (string, error)
	// Commit replaces the text of a document with mutate's result,
	// atomically with respect to other readers and other commits through
	// the same store.
	Commit(ctx context.Context, id string, mutate Mutator) error
}

var (
	// ErrInvalidID indicates an ID that does not name a document in the store.
	ErrInvalidID = errors.New("invalid document id")
	// ErrNotFound indicates the document does not exist.
	ErrNotFound = errors.New("document not found")
)
