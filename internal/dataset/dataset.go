// Package dataset loads the customer survey table from a CSV file into an
// immutable in-memory collection. The table is read-only after load, so it is
// safe to share across request goroutines without locking.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aerofitlabs/survey-insights/internal/model"
)

// MalformedInputError reports a structurally invalid input file: a missing
// required column, a non-numeric value in a numeric column, or an unknown
// enum code. Loading is all-or-nothing; no partial table is ever returned.
type MalformedInputError struct {
	Path   string
	Line   int    // 1-based, 0 when the problem is the header
	Column string // empty when the problem is the header as a whole
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input %s: line %d, column %s: %s", e.Path, e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("malformed input %s: %s", e.Path, e.Reason)
}

// Table is the loaded survey dataset. Records keep file order.
type Table struct {
	records []model.CustomerRecord
}

// NewTable wraps an in-memory record collection, mainly for tests.
func NewTable(records []model.CustomerRecord) *Table {
	return &Table{records: records}
}

// Records returns the underlying rows. Callers must treat the slice as
// read-only.
func (t *Table) Records() []model.CustomerRecord { return t.records }

func (t *Table) Len() int { return len(t.records) }

// Load reads the survey CSV at path. The header row is required and must
// contain all nine schema columns by name; order does not matter and extra
// columns are ignored.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := read(f, path)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func read(r io.Reader, path string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MalformedInputError{Path: path, Reason: "empty file, header row required"}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	// header name -> column index
	idx := make(map[model.Field]int, len(model.Fields))
	for i, h := range header {
		if f, err := model.ParseField(h); err == nil {
			idx[f] = i
		}
	}
	for _, f := range model.Fields {
		if _, ok := idx[f]; !ok {
			return nil, &MalformedInputError{Path: path, Reason: fmt.Sprintf("missing required column %q", f)}
		}
	}

	var records []model.CustomerRecord
	line := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line+1, err)
		}
		line++

		get := func(f model.Field) string {
			i := idx[f]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		var row model.CustomerRecord
		var ok bool

		if row.Product, ok = model.ParseProduct(get(model.FieldProduct)); !ok {
			return nil, badValue(path, line, model.FieldProduct, get(model.FieldProduct), "unknown product code")
		}
		if row.Gender, ok = model.ParseGender(get(model.FieldGender)); !ok {
			return nil, badValue(path, line, model.FieldGender, get(model.FieldGender), "unknown gender")
		}
		if row.MaritalStatus, ok = model.ParseMaritalStatus(get(model.FieldMaritalStatus)); !ok {
			return nil, badValue(path, line, model.FieldMaritalStatus, get(model.FieldMaritalStatus), "unknown marital status")
		}

		if row.Age, err = parseInt(path, line, model.FieldAge, get(model.FieldAge)); err != nil {
			return nil, err
		}
		if row.Education, err = parseInt(path, line, model.FieldEducation, get(model.FieldEducation)); err != nil {
			return nil, err
		}
		if row.Usage, err = parseInt(path, line, model.FieldUsage, get(model.FieldUsage)); err != nil {
			return nil, err
		}
		if row.Fitness, err = parseInt(path, line, model.FieldFitness, get(model.FieldFitness)); err != nil {
			return nil, err
		}
		if row.Income, err = parseFloat(path, line, model.FieldIncome, get(model.FieldIncome)); err != nil {
			return nil, err
		}
		if row.Miles, err = parseFloat(path, line, model.FieldMiles, get(model.FieldMiles)); err != nil {
			return nil, err
		}

		records = append(records, row)
	}

	return &Table{records: records}, nil
}

func badValue(path string, line int, f model.Field, v, reason string) error {
	return &MalformedInputError{
		Path:   path,
		Line:   line,
		Column: f.String(),
		Reason: fmt.Sprintf("%s %q", reason, v),
	}
}

func parseInt(path string, line int, f model.Field, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badValue(path, line, f, v, "non-numeric value")
	}
	return n, nil
}

func parseFloat(path string, line int, f model.Field, v string) (float64, error) {
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, badValue(path, line, f, v, "non-numeric value")
	}
	return x, nil
}
