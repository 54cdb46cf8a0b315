package kpifolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"
)

// FieldMap maps a snapshot field name to a jsonpath expression evaluated
// against one row of a foreign export.
type FieldMap map[string]string

// ImportMapping describes how to pull the records of one entity kind out
// of a foreign JSON export (a BI extract, an ERP dump, ...).
type ImportMapping struct {
	Entity EntityKind `yaml:"entity"`
	// Rows is the jsonpath selecting the array of row objects.
	Rows string `yaml:"rows"`
	// Fields maps each snapshot field to a jsonpath within a row.
	Fields FieldMap `yaml:"fields"`
}

// DecodeImportMappings reads a list of mappings from a YAML stream.
func DecodeImportMappings(r io.Reader) ([]ImportMapping, error) {
	var mappings []ImportMapping
	if err := yaml.NewDecoder(r).Decode(&mappings); err != nil {
		return nil, fmt.Errorf("decoding import mappings: %w", err)
	}
	return mappings, nil
}

// ImportRecords extracts records from a decoded JSON document according
// to the mapping. Rows that map to an entity carrying an "id" field but
// provide none are assigned a fresh ULID, so re-imports of id-less
// exports stay loadable.
func ImportRecords(doc any, m ImportMapping) ([]Record, error) {
	jrows, err := jsonpath.Get(m.Rows, doc)
	if err != nil {
		return nil, fmt.Errorf("selecting rows with %q: %w", m.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// a single object is accepted as a one-row table
		rows = []any{jrows}
	}

	var recs []Record
	for i, row := range rows {
		fields := make(map[string]any, len(m.Fields))
		for name, path := range m.Fields {
			jval, err := jsonpath.Get(path, row)
			if err != nil {
				continue // absent field: the quality scanner will report it
			}
			// because jsonpath is never clear about whether it returns a list
			// of 1 answer, or a single answer: keep the first one if any
			if jlist, ok := jval.([]any); ok {
				if len(jlist) == 0 {
					continue
				}
				jval = jlist[0]
			}
			fields[name] = jval
		}

		if needsID(m.Entity) {
			if id, ok := fields["id"].(string); !ok || id == "" {
				fields["id"] = ulid.Make().String()
			}
		}

		payload, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rec, err := decodeRecord(m.Entity, payload)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// needsID reports whether the entity kind is identified by a plain "id"
// field (completions key on project_id, KPI definitions on kpi_name).
func needsID(kind EntityKind) bool {
	switch kind {
	case KindCompletion, KindKpiDefinition:
		return false
	default:
		return true
	}
}
