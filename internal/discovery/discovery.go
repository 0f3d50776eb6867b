// Package discovery finds task boards in a vault.
//
// A document is a task board when its front matter carries
// "is-task-board: true" (a YAML boolean; the string "true" does not count)
// and its body has at least one lane heading.
package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/kantask/internal/board"
	"github.com/nibzard/kantask/internal/logging"
	"github.com/nibzard/kantask/internal/vault"
)

// BoardFlag is the front matter key that marks a document as a task board.
const BoardFlag = "is-task-board"

var (
	// ErrNoBoardsFound indicates the vault holds no task boards.
	ErrNoBoardsFound = errors.New("no task boards found: add \"is-task-board: true\" to the front matter of a kanban board")
	// ErrSelectionCancelled indicates the user dismissed board selection.
	ErrSelectionCancelled = errors.New("board selection cancelled")
	// ErrNotTaskBoard indicates a document is not flagged as a task board.
	ErrNotTaskBoard = errors.New("not a task board")
)

// Selector picks one board out of several.
type Selector interface {
	// SelectBoard returns one of boards or ErrSelectionCancelled.
	SelectBoard(ctx context.Context, boards []*board.Board) (*board.Board, error)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(ctx context.Context, boards []*board.Board) (*board.Board, error)

// SelectBoard implements Selector.
func (f SelectorFunc) SelectBoard(ctx context.Context, boards []*board.Board) (*board.Board, error) {
	return f(ctx, boards)
}

// Finder discovers boards in a store.
type Finder struct {
	store  vault.Store
	logger *log.Logger
}

// NewFinder creates a Finder. A nil logger discards log output.
func NewFinder(store vault.Store, logger *log.Logger) *Finder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Finder{store: store, logger: logger}
}

// IsTaskBoard reports whether front matter flags a task board.
func IsTaskBoard(meta map[string]any) bool {
	v, ok := meta[BoardFlag].(bool)
	return ok && v
}

// TaskBoards returns every flagged document that parses as a board, in the
// store's listing order. Documents that cannot be read or parsed are logged
// and skipped; only a failure to list the store is returned.
func (f *Finder) TaskBoards(ctx context.Context) ([]*board.Board, error) {
	ids, err := f.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	var boards []*board.Board
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		meta, err := f.store.Metadata(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			f.logger.Warn("skipping document", "board", id, "err", err)
			continue
		}
		if !IsTaskBoard(meta) {
			continue
		}
		b, err := f.load(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			f.logger.Warn("skipping board", "board", id, "err", err)
			continue
		}
		boards = append(boards, b)
	}
	f.logger.Debug("discovered boards", "count", len(boards), "documents", len(ids))
	return boards, nil
}

// Board loads the board stored under id. The document must be flagged.
func (f *Finder) Board(ctx context.Context, id string) (*board.Board, error) {
	meta, err := f.store.Metadata(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsTaskBoard(meta) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotTaskBoard)
	}
	return f.load(ctx, id)
}

func (f *Finder) load(ctx context.Context, id string) (*board.Board, error) {
	text, err := f.store.ReadText(ctx, id)
	if err != nil {
		return nil, err
	}
	b, err := board.Parse(id, text)
	if err != nil {
		return nil, err
	}
	switch {
	case b.SettingsErr == nil:
	case errors.Is(b.SettingsErr, board.ErrSettingsNotFound):
		f.logger.Debug("board has no settings block, using defaults", "board", id)
	default:
		f.logger.Warn("board settings unreadable, using defaults", "board", id, "err", b.SettingsErr)
	}
	return b, nil
}

// Select applies the selection policy: no boards is ErrNoBoardsFound, one
// board is returned as is, several are handed to selector.
func Select(ctx context.Context, boards []*board.Board, selector Selector) (*board.Board, error) {
	switch len(boards) {
	case 0:
		return nil, ErrNoBoardsFound
	case 1:
		return boards[0], nil
	}
	if selector == nil {
		return nil, fmt.Errorf("%d task boards found, choose one with --board: %w", len(boards), ErrSelectionCancelled)
	}
	b, err := selector.SelectBoard(ctx, boards)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrSelectionCancelled
	}
	return b, nil
}
