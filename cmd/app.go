// Package cmd implements the CLI application to report on a project
// portfolio snapshot.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"

	"kpifolio"
)

// Commands lists the subcommands of the application.
// A main package ranges over it to register them on a Commander.
var Commands = []subcommands.Command{
	&budgetCmd{},
	&utilizationCmd{},
	&burnCmd{},
	&forecastCmd{},
	&poCmd{},
	&milestonesCmd{},
	&portfolioCmd{},
	&checkCmd{},
	&qualityCmd{},
	&kpisCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", "portfolio.jsonl", "Path to the snapshot file containing entities (JSONL format)")
var thresholdsFile = flag.String("thresholds-file", "thresholds.yaml", "Path to the thresholds configuration file")
var reportingCurrency = flag.String("currency", "EUR", "Reporting currency of the snapshot amounts")

// DecodeSnapshot decodes the store from the app default snapshot file.
// If the file does not exist, it returns a new empty store.
func DecodeSnapshot() (*kpifolio.Store, error) {
	f, err := os.Open(*snapshotFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kpifolio.NewStore(*reportingCurrency), nil
		}
		return nil, fmt.Errorf("could not open snapshot file %q: %w", *snapshotFile, err)
	}
	defer f.Close()

	s, err := kpifolio.DecodeStore(*reportingCurrency, f)
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot file %q: %w", *snapshotFile, err)
	}
	return s, nil
}

// Thresholds loads the app thresholds, falling back on defaults when
// the file is missing.
func Thresholds() (kpifolio.Thresholds, error) {
	return kpifolio.LoadThresholds(*thresholdsFile)
}

// EncodeRecords appends records to the app default snapshot file.
func EncodeRecords(recs ...kpifolio.Record) subcommands.ExitStatus {
	f, err := os.OpenFile(*snapshotFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot file %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, rec := range recs {
		if err := kpifolio.EncodeRecord(f, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to snapshot file %q: %v\n", *snapshotFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Successfully appended %d record(s) to %s\n", len(recs), *snapshotFile)
	return subcommands.ExitSuccess
}
