package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"kpifolio/renderer"
)

// milestonesCmd holds the flags for the 'milestones' subcommand.
type milestonesCmd struct{}

func (*milestonesCmd) Name() string     { return "milestones" }
func (*milestonesCmd) Synopsis() string { return "display the milestone health report" }
func (*milestonesCmd) Usage() string {
	return `kpr milestones

  Displays completed, delayed and in-flight milestone counts per
  project, and the on-time completion percent.
`
}

func (c *milestonesCmd) SetFlags(f *flag.FlagSet) {}

func (c *milestonesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MilestoneMarkdown(s.NewMilestoneReport()))
	return subcommands.ExitSuccess
}
