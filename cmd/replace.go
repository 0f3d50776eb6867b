package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/nibzard/kantask/internal/task"
	"github.com/nibzard/kantask/internal/writer"
)

// replaceCommand rewrites one task line. Fields not given on the command
// line are kept from the existing line.
func (a *app) replaceCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("kantask replace", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var tf taskFlags
	tf.register(fs, false)
	lineIndex := fs.Int("line", -1, "0-based line number to replace")
	noDate := fs.Bool("no-date", false, "Drop the date")
	noTime := fs.Bool("no-time", false, "Drop the time")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		if tf.title != "" {
			return fmt.Errorf("unexpected arguments: %v", rest)
		}
		tf.title = strings.Join(rest, " ")
	}
	if *lineIndex < 0 {
		return fmt.Errorf("--line is required")
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	b, err := a.resolveBoard(ctx, store, tf.board)
	if err != nil {
		return err
	}
	date, err := tf.resolveDate(a, b)
	if err != nil {
		return err
	}
	clock, err := tf.resolveTime(a)
	if err != nil {
		return err
	}

	var written task.Task
	err = store.Commit(ctx, b.ID, func(text string) (string, error) {
		line, err := writer.Line(text, *lineIndex)
		if err != nil {
			return "", err
		}
		current, err := task.ParseLine(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", *lineIndex, err)
		}
		lane, ok := writer.LaneAt(text, *lineIndex)
		if !ok {
			return "", fmt.Errorf("line %d is not inside a lane", *lineIndex)
		}

		title := current.Title
		if strings.TrimSpace(tf.title) != "" {
			title = tf.title
		}
		tags := current.Tags
		if len(tf.tags) > 0 {
			tags = normalizeTags(tf.tags)
		}
		d, c := current.Date, current.Time
		if date != "" || *noDate {
			d = date
		}
		if clock != "" || *noTime {
			c = clock
		}

		t := task.New(title, lane, d, c, tags)
		if err := task.Validate(t, b); err != nil {
			return "", err
		}
		written = t
		return writer.ReplaceTaskLine(text, *lineIndex, t)
	})
	if err != nil {
		return fmt.Errorf("replacing line %d of %s: %w", *lineIndex, b.ID, err)
	}

	a.logger.Info("task replaced", "board", b.ID, "lane", written.Lane, "line", *lineIndex)
	fmt.Fprintln(a.stdout, task.Format(written))
	return nil
}
