package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/nibzard/kantask/internal/board"
)

// errCheckFailed is returned when a settings block does not validate.
var errCheckFailed = errors.New("settings validation failed")

// checkCommand validates the settings block of a board.
func (a *app) checkCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("kantask check", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	boardID := fs.String("board", "", "Board to check, relative to the vault")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	b, err := a.resolveBoard(ctx, store, *boardID)
	if err != nil {
		return err
	}
	text, err := store.ReadText(ctx, b.ID)
	if err != nil {
		return err
	}

	result := board.ValidateSettings(text)
	fmt.Fprintf(a.stdout, "Board: %s\n", b.ID)
	fmt.Fprintf(a.stdout, "Lanes: %d\n", len(b.Lanes))
	for _, w := range result.Warnings {
		fmt.Fprintf(a.stdout, "  warning: %s\n", w)
	}
	if !result.Valid {
		fmt.Fprintln(a.stdout, "  Settings invalid:")
		for _, e := range result.Errors {
			fmt.Fprintf(a.stdout, "    - %v\n", e)
		}
		return fmt.Errorf("%s: %w", b.ID, errCheckFailed)
	}
	if result.Found {
		fmt.Fprintln(a.stdout, "  Settings valid")
	}
	return nil
}
