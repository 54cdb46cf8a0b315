package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	"kpifolio/renderer"
)

// kpisCmd holds the flags for the 'kpis' subcommand.
type kpisCmd struct{}

func (*kpisCmd) Name() string     { return "kpis" }
func (*kpisCmd) Synopsis() string { return "list the KPI definitions of the snapshot" }
func (*kpisCmd) Usage() string {
	return `kpr kpis

  Lists the KPI catalog: name, description and target threshold.
`
}

func (c *kpisCmd) SetFlags(f *flag.FlagSet) {}

func (c *kpisCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.KpiDefinitionsMarkdown(slices.Collect(s.KpiDefinitions())))
	return subcommands.ExitSuccess
}
