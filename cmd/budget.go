package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"kpifolio/renderer"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct{}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display the budget vs actual report" }
func (*budgetCmd) Usage() string {
	return `kpr budget

  Displays budget, recorded spend, variance amount and variance percent
  for every project. Projects without a budget keep their row with an
  undefined percent.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BudgetMarkdown(s.NewBudgetReport()))
	return subcommands.ExitSuccess
}

// utilizationCmd holds the flags for the 'utilization' subcommand.
type utilizationCmd struct{}

func (*utilizationCmd) Name() string     { return "utilization" }
func (*utilizationCmd) Synopsis() string { return "display the budget utilization KPI view" }
func (*utilizationCmd) Usage() string {
	return `kpr utilization

  Displays the utilization percent (spend over budget) and the cost
  variance of every project.
`
}

func (c *utilizationCmd) SetFlags(f *flag.FlagSet) {}

func (c *utilizationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.UtilizationMarkdown(s.BudgetUtilizationView(), s.Currency()))
	return subcommands.ExitSuccess
}
