package kpifolio

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleExport = `{
  "report": {
    "expenses": [
      {"ref": "e-1", "proj": "p1", "on": "2025-01-10", "label": "Services", "total": 300.5},
      {"proj": "p1", "on": "2025-02-10", "label": "Hardware", "total": 900}
    ]
  }
}`

func spendMapping() ImportMapping {
	return ImportMapping{
		Entity: KindSpendEntry,
		Rows:   "$.report.expenses",
		Fields: FieldMap{
			"id":         "$.ref",
			"project_id": "$.proj",
			"date":       "$.on",
			"category":   "$.label",
			"amount":     "$.total",
		},
	}
}

func TestImportRecords(t *testing.T) {
	var doc any
	if err := json.Unmarshal([]byte(sampleExport), &doc); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}

	recs, err := ImportRecords(doc, spendMapping())
	if err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("ImportRecords() = %d records, want 2", len(recs))
	}

	first, ok := recs[0].(SpendEntry)
	if !ok {
		t.Fatalf("ImportRecords()[0] = %T, want SpendEntry", recs[0])
	}
	if first.ID != "e-1" || first.ProjectID != "p1" || first.Category != "Services" {
		t.Errorf("ImportRecords()[0] = %+v, want the mapped fields", first)
	}
	if first.Date != d("2025-01-10") {
		t.Errorf("date = %v, want 2025-01-10", first.Date)
	}
	if !first.Amount.Valid || !first.Amount.Decimal.Equal(EUR(300.5).Amount()) {
		t.Errorf("amount = %v, want 300.5", first.Amount)
	}

	// The second row has no "ref": it gets a generated ULID.
	second := recs[1].(SpendEntry)
	if second.ID == "" {
		t.Error("ImportRecords() left the id empty, want a generated ULID")
	}
	if second.ID == first.ID {
		t.Error("ImportRecords() reused an id")
	}
}

func TestImportRecords_BadRowsPath(t *testing.T) {
	var doc any
	if err := json.Unmarshal([]byte(`{}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	m := spendMapping()
	m.Rows = "$.nowhere.expenses"
	if _, err := ImportRecords(doc, m); err == nil {
		t.Error("ImportRecords() expected an error for a dead rows path")
	}
}

func TestDecodeImportMappings(t *testing.T) {
	yml := `
- entity: spend
  rows: $.report.expenses
  fields:
    id: $.ref
    project_id: $.proj
- entity: completion
  rows: $.report.done
  fields:
    project_id: $.proj
    actual_end_date: $.finished
`
	mappings, err := DecodeImportMappings(strings.NewReader(yml))
	if err != nil {
		t.Fatalf("DecodeImportMappings() error = %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("DecodeImportMappings() = %d mappings, want 2", len(mappings))
	}
	if mappings[0].Entity != KindSpendEntry || mappings[0].Fields["id"] != "$.ref" {
		t.Errorf("DecodeImportMappings()[0] = %+v, want the spend mapping", mappings[0])
	}
	if mappings[1].Entity != KindCompletion {
		t.Errorf("DecodeImportMappings()[1] = %+v, want the completion mapping", mappings[1])
	}
}
