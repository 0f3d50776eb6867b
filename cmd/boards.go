package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nibzard/kantask/internal/board"
	"github.com/nibzard/kantask/internal/discovery"
	"github.com/nibzard/kantask/internal/vault"
)

// boardsCommand lists the task boards of the vault.
func (a *app) boardsCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("kantask boards", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	watch := fs.Bool("watch", false, "Keep listing as the vault changes")
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
	finder := discovery.NewFinder(store, a.logger)

	list := func() error {
		boards, err := finder.TaskBoards(ctx)
		if err != nil {
			return err
		}
		if len(boards) == 0 {
			fmt.Fprintln(a.stdout, "No task boards found. Add \"is-task-board: true\" to the front matter of a kanban board.")
			return nil
		}
		return printBoards(a.stdout, boards)
	}

	if err := list(); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	a.logger.Info("watching vault for changes", "root", store.Root())
	return store.Watch(ctx, vault.DefaultDebounce, func() {
		fmt.Fprintln(a.stdout)
		if err := list(); err != nil && ctx.Err() == nil {
			a.logger.Error("listing boards", "err", err)
		}
	})
}

func printBoards(w io.Writer, boards []*board.Board) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BOARD\tLANES\tNAMES")
	for _, b := range boards {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", b.ID, len(b.Lanes), strings.Join(b.Lanes, ", "))
	}
	return tw.Flush()
}
