package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"kpifolio"
	"kpifolio/renderer"
)

// burnCmd holds the flags for the 'burn' subcommand.
type burnCmd struct {
	period string
}

func (*burnCmd) Name() string     { return "burn" }
func (*burnCmd) Synopsis() string { return "display the spending pace per project" }
func (*burnCmd) Usage() string {
	return `kpr burn [-period <monthly|quarterly|yearly>]

  Displays spend per calendar bucket for every project, with the
  cumulative total and the per-day rate since the project start.
`
}

func (c *burnCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "monthly", "Calendar bucket (monthly, quarterly, yearly)")
}

func (c *burnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := kpifolio.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BurnMarkdown(s.NewBurnReport(period)))
	return subcommands.ExitSuccess
}
