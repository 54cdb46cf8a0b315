package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"kpifolio"
	"kpifolio/docs"
	"kpifolio/renderer"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a portfolio controller. He is here primarily to understand the budget,
			schedule and data-quality situation of the projects in his snapshot.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// StoreLoader loads the snapshot on demand so every tool call sees the
// current file content.
type StoreLoader func() (*kpifolio.Store, error)

// NewAnalyst returns the expert that reads the snapshot and answers
// with rendered reports.
func NewAnalyst(load StoreLoader, th kpifolio.Thresholds) *Expert {
	lib := []Function{
		reportFunc("BudgetReport",
			"Budget vs actual per project: budget, recorded spend, variance amount and variance percent.",
			load, func(s *kpifolio.Store) string { return renderer.BudgetMarkdown(s.NewBudgetReport()) }),
		reportFunc("BurnRate",
			"Monthly spending pace per project with cumulative totals and per-day rate.",
			load, func(s *kpifolio.Store) string { return renderer.BurnMarkdown(s.NewBurnReport(kpifolio.Monthly)) }),
		reportFunc("ForecastVariance",
			"Forecast vs actual amounts grouped by project and forecast date.",
			load, func(s *kpifolio.Store) string { return renderer.ForecastMarkdown(s.NewForecastReport()) }),
		reportFunc("PurchaseOrders",
			"Purchase order coverage per project: committed, spent, open commitments and conversion ratio.",
			load, func(s *kpifolio.Store) string { return renderer.PurchaseOrderMarkdown(s.NewPurchaseOrderReport()) }),
		reportFunc("MilestoneHealth",
			"Milestone counts per project and the on-time completion percent.",
			load, func(s *kpifolio.Store) string { return renderer.MilestoneMarkdown(s.NewMilestoneReport()) }),
		reportFunc("PortfolioRollup",
			"Portfolio-level counts of projects on budget and on time.",
			load, func(s *kpifolio.Store) string {
				return renderer.PortfolioMarkdown(s.PortfolioOnBudgetView(), s.PortfolioOnTimeView())
			}),
		reportFunc("IntegrityCheck",
			"Referential integrity violations: orphan references, invalid statuses, negative amounts, forecast accuracy gaps.",
			load, func(s *kpifolio.Store) string { return renderer.ViolationsMarkdown(kpifolio.CheckIntegrity(s, th)) }),
		reportFunc("QualityScan",
			"The ten data-quality checks: duplicates, missing values, outliers, deviations and coverage gaps.",
			load, func(s *kpifolio.Store) string { return renderer.FindingsMarkdown(kpifolio.ScanQuality(s, th)) }),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the portfolio Analyst. He reads the project snapshot and computes
		every budget, forecast, milestone and data-quality figure from it.
		Ask the Analyst whenever a question is about the user's projects.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's project portfolio snapshot.
				You know how to use the Tools to extract the relevant figures. Answers from the
				tools are markdown reports, quote the relevant rows rather than the whole table.

				Background documentation about the reports and checks:

` + must(docs.GetTopics("reports", "checks")) + `
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// reportFunc wraps a no-argument report rendering as a callable tool.
func reportFunc(name, description string, load StoreLoader, render func(*kpifolio.Store) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report computed from the current snapshot.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := load()
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: name,
					Response: map[string]any{
						"error": fmt.Sprintf("could not load snapshot: %v", err),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: name,
				Response: map[string]any{
					"output": render(s),
				},
			}
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
