package cmd

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/nibzard/kantask/internal/config"
)

// configCommand prints the effective configuration and where each value
// came from.
func (a *app) configCommand(args []string) error {
	fs := flag.NewFlagSet("kantask config", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	example := fs.Bool("example", false, "Print an example configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Fprint(a.stdout, config.ExampleConfig())
		return nil
	}

	if file := a.sources.GetConfigFile(); file != "" {
		fmt.Fprintf(a.stdout, "Config file: %s\n\n", file)
	} else {
		fmt.Fprintln(a.stdout, "Config file: none")
		fmt.Fprintln(a.stdout)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, e := range a.sources.Entries() {
		fmt.Fprintf(tw, "%s\t%s\t(%s)\n", e.Key, e.Value, e.Source)
	}
	return tw.Flush()
}
