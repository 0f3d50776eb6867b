// Package cmd implements the CLI command structure for kantask.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/kantask/internal/board"
	"github.com/nibzard/kantask/internal/config"
	"github.com/nibzard/kantask/internal/discovery"
	"github.com/nibzard/kantask/internal/logging"
	"github.com/nibzard/kantask/internal/ui"
	"github.com/nibzard/kantask/internal/vault"
)

// Version is set via ldflags at build time.
var Version = "dev"

// app carries what every subcommand needs.
type app struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	// selector overrides the selector chosen from config; used by tests.
	selector discovery.Selector

	cfg     *config.Config
	sources *config.ConfigWithSources
	logger  *log.Logger
}

// Run executes the kantask CLI.
func Run(ctx context.Context, args []string) error {
	a := &app{stdout: os.Stdout, stderr: os.Stderr, now: time.Now}
	return a.run(ctx, args)
}

func (a *app) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("kantask", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		printUsage(fs, a.stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cws.Config
	a.sources = cws
	a.logger = logging.NewFromConfig(a.stderr, a.cfg.LogLevel, a.cfg.LogFormat, a.cfg.LogTimestamps, a.cfg.LogCaller)

	if *help {
		printUsage(fs, a.stdout)
		return nil
	}
	if *showVersion {
		return a.versionCommand()
	}

	// No subcommand, or a flag first, means "add".
	subcommand := "add"
	remaining := fs.Args()
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	switch subcommand {
	case "add":
		return a.addCommand(ctx, remaining)
	case "boards", "ls":
		return a.boardsCommand(ctx, remaining)
	case "show":
		return a.showCommand(ctx, remaining)
	case "check":
		return a.checkCommand(ctx, remaining)
	case "replace":
		return a.replaceCommand(ctx, remaining)
	case "config":
		return a.configCommand(remaining)
	case "version":
		return a.versionCommand()
	case "help":
		printUsage(fs, a.stdout)
		return nil
	default:
		fmt.Fprintf(a.stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, a.stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// openStore opens the configured vault.
func (a *app) openStore() (*vault.DirStore, error) {
	store, err := vault.NewDirStore(a.cfg.Vault, vault.WithExtensions(a.cfg.Extensions...))
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}
	a.logger.Debug("opened vault", "root", store.Root(), "extensions", a.cfg.Extensions)
	return store, nil
}

// boardSelector returns the selector used when several boards qualify.
func (a *app) boardSelector() discovery.Selector {
	if a.selector != nil {
		return a.selector
	}
	if a.cfg.Selector != config.SelectorTUI {
		return nil
	}
	if !ui.IsTTY(os.Stdin) || !ui.IsTTY(os.Stderr) {
		a.logger.Debug("no terminal, board selector disabled")
		return nil
	}
	return ui.NewBoardSelector()
}

// resolveBoard loads the board named by id, falling back to the configured
// default board and finally to discovery and selection.
func (a *app) resolveBoard(ctx context.Context, store vault.Store, id string) (*board.Board, error) {
	finder := discovery.NewFinder(store, a.logger)
	if id == "" {
		id = a.cfg.Board
	}
	if id != "" {
		return finder.Board(ctx, id)
	}

	boards, err := finder.TaskBoards(ctx)
	if err != nil {
		return nil, err
	}
	return discovery.Select(ctx, boards, a.boardSelector())
}

// versionCommand prints version information.
func (a *app) versionCommand() error {
	fmt.Fprintf(a.stdout, "kantask version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "kantask - add tasks to Markdown kanban boards")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  kantask [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add [title]   Add a task to a board lane (default command)")
	fmt.Fprintln(w, "  boards        List task boards in the vault")
	fmt.Fprintln(w, "  show          Show lanes, date formats and tags of a board")
	fmt.Fprintln(w, "  check         Validate the settings block of a board")
	fmt.Fprintln(w, "  replace       Replace a task line of a board")
	fmt.Fprintln(w, "  config        Show effective configuration")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add Options:")
	fmt.Fprintln(w, "  -title string     Task title (or pass it as arguments)")
	fmt.Fprintln(w, "  -lane string      Lane to add to (default: first lane)")
	fmt.Fprintln(w, "  -date string      Due date in the board's date format")
	fmt.Fprintln(w, "  -today            Use today's date")
	fmt.Fprintln(w, "  -time string      Time as HH:MM")
	fmt.Fprintln(w, "  -now              Use the current time")
	fmt.Fprintln(w, "  -tag string       Tag to attach (repeatable)")
	fmt.Fprintln(w, "  -board string     Board to use, relative to the vault")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Boards Options:")
	fmt.Fprintln(w, "  -watch            Keep listing as the vault changes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replace Options:")
	fmt.Fprintln(w, "  -line int         0-based line number to replace (required)")
	fmt.Fprintln(w, "  -no-date          Drop the date of the replaced task")
	fmt.Fprintln(w, "  -no-time          Drop the time of the replaced task")
	fmt.Fprintln(w, "  plus the add options except -lane")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example          Print an example configuration file")
}
