package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"kpifolio/renderer"
)

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct{}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "display the forecast variance report" }
func (*forecastCmd) Usage() string {
	return `kpr forecast

  Displays forecast and actual amounts grouped by project and forecast
  date, with the variance between them.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ForecastMarkdown(s.NewForecastReport()))
	return subcommands.ExitSuccess
}
