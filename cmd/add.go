package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/nibzard/kantask/internal/board"
	"github.com/nibzard/kantask/internal/dates"
	"github.com/nibzard/kantask/internal/task"
	"github.com/nibzard/kantask/internal/writer"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// taskFlags are the flags shared by add and replace.
type taskFlags struct {
	title string
	lane  string
	date  string
	clock string
	today bool
	now   bool
	tags  stringList
	board string
}

func (tf *taskFlags) register(fs *flag.FlagSet, withLane bool) {
	fs.StringVar(&tf.title, "title", "", "Task title")
	if withLane {
		fs.StringVar(&tf.lane, "lane", "", "Lane to add to (default: first lane)")
	}
	fs.StringVar(&tf.date, "date", "", "Date in the board's date format")
	fs.BoolVar(&tf.today, "today", false, "Use today's date")
	fs.StringVar(&tf.clock, "time", "", "Time as HH:MM")
	fs.BoolVar(&tf.now, "now", false, "Use the current time")
	fs.Var(&tf.tags, "tag", "Tag to attach (repeatable)")
	fs.StringVar(&tf.board, "board", "", "Board to use, relative to the vault")
}

// resolveDate returns the date to write, rendering --today with the
// board's date format.
func (tf *taskFlags) resolveDate(a *app, b *board.Board) (string, error) {
	if tf.today {
		if tf.date != "" {
			return "", fmt.Errorf("--date and --today are mutually exclusive")
		}
		return dates.Today(a.now(), b.Settings.DateFormat), nil
	}
	return tf.date, nil
}

// resolveTime returns the time to write, rendering --now as HH:MM.
func (tf *taskFlags) resolveTime(a *app) (string, error) {
	if tf.now {
		if tf.clock != "" {
			return "", fmt.Errorf("--time and --now are mutually exclusive")
		}
		return dates.Now(a.now()), nil
	}
	return tf.clock, nil
}

// normalizeTags prefixes '#' where missing and splits comma lists.
func normalizeTags(raw []string) []string {
	var tags []string
	for _, value := range raw {
		for _, tag := range strings.Split(value, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if !strings.HasPrefix(tag, "#") {
				tag = "#" + tag
			}
			tags = append(tags, tag)
		}
	}
	return tags
}

// addCommand formats a task and inserts it at the top of a lane.
func (a *app) addCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("kantask add", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var tf taskFlags
	tf.register(fs, true)
	if err := fs.Parse(args); err != nil {
		return err
	}

	title := tf.title
	if rest := fs.Args(); len(rest) > 0 {
		if title != "" {
			return fmt.Errorf("unexpected arguments: %v", rest)
		}
		title = strings.Join(rest, " ")
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("a task title is required (--title or arguments)")
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	b, err := a.resolveBoard(ctx, store, tf.board)
	if err != nil {
		return err
	}

	lane := tf.lane
	if lane == "" {
		lane = b.DefaultLane()
	}
	date, err := tf.resolveDate(a, b)
	if err != nil {
		return err
	}
	clock, err := tf.resolveTime(a)
	if err != nil {
		return err
	}

	t := task.New(title, lane, date, clock, normalizeTags(tf.tags))
	if err := task.Validate(t, b); err != nil {
		return err
	}
	for _, tag := range t.Tags {
		if _, ok := b.Settings.TagColor(tag); !ok {
			a.logger.Debug("tag has no color on this board", "board", b.ID, "tag", tag)
		}
	}

	if err := store.Commit(ctx, b.ID, writer.Insert(t)); err != nil {
		return fmt.Errorf("adding task to %s: %w", b.ID, err)
	}

	a.logger.Info("task added", "board", b.ID, "lane", t.Lane)
	fmt.Fprintln(a.stdout, task.Format(t))
	return nil
}
