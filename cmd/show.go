package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/nibzard/kantask/internal/ui"
)

// showCommand renders a board's lanes, date formats and tag choices.
func (a *app) showCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("kantask show", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	boardID := fs.String("board", "", "Board to show, relative to the vault")
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

	fmt.Fprint(a.stdout, ui.RenderBoard(b))
	if b.SettingsErr != nil {
		fmt.Fprintf(a.stdout, "\nSettings: %v, defaults apply\n", b.SettingsErr)
	}
	return nil
}
