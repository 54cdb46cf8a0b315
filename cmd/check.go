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

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "report integrity violations in the snapshot" }
func (*checkCmd) Usage() string {
	return `kpr check

  Reports orphan references, invalid milestone statuses, negative
  amounts and forecast accuracy gaps. Exits with a failure status when
  any violation is found.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	th, err := Thresholds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	violations := kpifolio.CheckIntegrity(s, th)
	printMarkdown(renderer.ViolationsMarkdown(violations))

	if len(violations) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
