package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"kpifolio"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	mappingFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import entities from a foreign JSON export" }
func (*importCmd) Usage() string {
	return `kpr import -mapping <mapping.yaml> <export.json>...

  Extracts entities from foreign JSON exports using jsonpath mappings
  and appends them to the snapshot file. Rows without an id get a
  generated one.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mappingFile, "mapping", "", "YAML file describing the jsonpath mappings")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.mappingFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -mapping is required")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one export file is required")
		return subcommands.ExitUsageError
	}

	mf, err := os.Open(c.mappingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening mapping file %q: %v\n", c.mappingFile, err)
		return subcommands.ExitFailure
	}
	defer mf.Close()

	mappings, err := kpifolio.DecodeImportMappings(mf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var recs []kpifolio.Record
	for _, exportFile := range f.Args() {
		data, err := os.ReadFile(exportFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading export file %q: %v\n", exportFile, err)
			return subcommands.ExitFailure
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing export file %q: %v\n", exportFile, err)
			return subcommands.ExitFailure
		}

		for _, m := range mappings {
			imported, err := kpifolio.ImportRecords(doc, m)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error importing %s from %q: %v\n", m.Entity, exportFile, err)
				return subcommands.ExitFailure
			}
			recs = append(recs, imported...)
		}
	}

	if len(recs) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no record matched the mappings.")
		return subcommands.ExitSuccess
	}
	return EncodeRecords(recs...)
}
