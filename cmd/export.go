package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"kpifolio"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	outputFile string
	period     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all reports and KPI views as JSON" }
func (*exportCmd) Usage() string {
	return `kpr export [-o <file>] [-period <monthly|quarterly|yearly>]

  Computes every report and KPI view from the snapshot and writes them
  as a single JSON document, the hand-off format for BI tools.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to stdout.")
	f.StringVar(&c.period, "period", "monthly", "Calendar bucket of the burn report")
}

// export is the full BI hand-off document.
type export struct {
	Currency          string                        `json:"currency"`
	Budget            *kpifolio.BudgetReport        `json:"budget"`
	Utilization       []kpifolio.UtilizationRow     `json:"utilization"`
	Burn              *kpifolio.BurnReport          `json:"burn"`
	Forecast          *kpifolio.ForecastReport      `json:"forecast"`
	PurchaseOrders    *kpifolio.PurchaseOrderReport `json:"purchase_orders"`
	Milestones        *kpifolio.MilestoneReport     `json:"milestones"`
	PortfolioOnBudget kpifolio.OnBudgetSummary      `json:"portfolio_on_budget"`
	PortfolioOnTime   kpifolio.OnTimeSummary        `json:"portfolio_on_time"`
	KpiDefinitions    []kpifolio.KpiDefinition      `json:"kpi_definitions,omitempty"`
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	doc := export{
		Currency:          s.Currency(),
		Budget:            s.NewBudgetReport(),
		Utilization:       s.BudgetUtilizationView(),
		Burn:              s.NewBurnReport(period),
		Forecast:          s.NewForecastReport(),
		PurchaseOrders:    s.NewPurchaseOrderReport(),
		Milestones:        s.NewMilestoneReport(),
		PortfolioOnBudget: s.PortfolioOnBudgetView(),
		PortfolioOnTime:   s.PortfolioOnTimeView(),
	}
	for k := range s.KpiDefinitions() {
		doc.KpiDefinitions = append(doc.KpiDefinitions, k)
	}

	var w io.Writer = os.Stdout
	if c.outputFile != "" {
		out, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding export: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
