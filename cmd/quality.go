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

// qualityCmd holds the flags for the 'quality' subcommand.
type qualityCmd struct {
	strict bool
}

func (*qualityCmd) Name() string     { return "quality" }
func (*qualityCmd) Synopsis() string { return "run the data-quality scan on the snapshot" }
func (*qualityCmd) Usage() string {
	return `kpr quality [-strict]

  Runs the ten data-quality checks and reports their findings. The scan
  is advisory: it always exits successfully unless -strict is set.
`
}

func (c *qualityCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "Exit with a failure status when any finding is reported")
}

func (c *qualityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	findings := kpifolio.ScanQuality(s, th)
	printMarkdown(renderer.FindingsMarkdown(findings))

	if c.strict {
		for _, finding := range findings {
			if !finding.Clean() {
				return subcommands.ExitFailure
			}
		}
	}
	return subcommands.ExitSuccess
}
