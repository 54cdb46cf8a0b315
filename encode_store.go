package kpifolio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeStore decodes a snapshot from a stream of JSONL data: one record
// per line, identified by its "entity" field. Records may appear in any
// order. Derived figures of the resulting store are expressed in the
// given reporting currency.
func DecodeStore(currency string, r io.Reader) (*Store, error) {
	s := NewStore(currency)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Entity EntityKind `json:"entity"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify entity: %w", line, err)
		}

		rec, err := decodeRecord(identifier.Entity, lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := s.Append(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return s, nil
}

func decodeRecord(kind EntityKind, data []byte) (Record, error) {
	unmarshal := func(v Record) (Record, error) {
		if err := json.Unmarshal(data, v); err != nil {
			return nil, fmt.Errorf("decoding %s record: %w", kind, err)
		}
		return v, nil
	}

	var rec Record
	var err error
	switch kind {
	case KindManager:
		rec, err = unmarshal(&Manager{})
	case KindProject:
		rec, err = unmarshal(&Project{})
	case KindSpendEntry:
		rec, err = unmarshal(&SpendEntry{})
	case KindMilestone:
		rec, err = unmarshal(&Milestone{})
	case KindForecast:
		rec, err = unmarshal(&Forecast{})
	case KindPurchaseOrder:
		rec, err = unmarshal(&PurchaseOrder{})
	case KindCompletion:
		rec, err = unmarshal(&ProjectCompletion{})
	case KindKpiDefinition:
		rec, err = unmarshal(&KpiDefinition{})
	default:
		return nil, fmt.Errorf("unknown entity %q", kind)
	}
	if err != nil {
		return nil, err
	}
	// unmarshal needed pointers; records are stored by value.
	return deref(rec), nil
}

func deref(rec Record) Record {
	switch v := rec.(type) {
	case *Manager:
		return *v
	case *Project:
		return *v
	case *SpendEntry:
		return *v
	case *Milestone:
		return *v
	case *Forecast:
		return *v
	case *PurchaseOrder:
		return *v
	case *ProjectCompletion:
		return *v
	case *KpiDefinition:
		return *v
	default:
		return rec
	}
}

// EncodeRecord writes a single record as one JSONL line, with its
// "entity" discriminator first.
func EncodeRecord(w io.Writer, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", rec.Kind(), err)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "{%q:%q", "entity", rec.Kind())
	if !bytes.Equal(payload, []byte("{}")) {
		b.WriteByte(',')
		b.Write(payload[1 : len(payload)-1])
	}
	b.WriteString("}\n")
	_, err = w.Write(b.Bytes())
	return err
}

// EncodeStore writes the whole snapshot as JSONL, one entity kind after
// the other, records in insertion order.
func EncodeStore(w io.Writer, s *Store) error {
	var errs []error
	write := func(rec Record) {
		if err := EncodeRecord(w, rec); err != nil {
			errs = append(errs, err)
		}
	}
	for m := range s.Managers() {
		write(m)
	}
	for p := range s.Projects() {
		write(p)
	}
	for e := range s.SpendEntries() {
		write(e)
	}
	for m := range s.Milestones() {
		write(m)
	}
	for f := range s.Forecasts() {
		write(f)
	}
	for o := range s.PurchaseOrders() {
		write(o)
	}
	for c := range s.Completions() {
		write(c)
	}
	for k := range s.KpiDefinitions() {
		write(k)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
