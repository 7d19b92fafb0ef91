package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/aerofitlabs/survey-insights/internal/dataset"
	"github.com/aerofitlabs/survey-insights/internal/model"
)

func TestCrosstabCounts(t *testing.T) {
	e := testEngine()
	ct, err := e.Crosstab(model.FieldProduct, model.FieldGender, false)
	if err != nil {
		t.Fatalf("Crosstab: %v", err)
	}
	if len(ct.Cols) != 2 || ct.Cols[0] != "Female" || ct.Cols[1] != "Male" {
		t.Fatalf("cols = %v, want [Female Male]", ct.Cols)
	}
	if len(ct.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(ct.Rows))
	}

	grand := 0
	for _, r := range ct.Rows {
		sum := 0
		for _, n := range r.Counts {
			sum += n
		}
		if sum != r.Total {
			t.Fatalf("row %s total %d != counts sum %d", r.Label, r.Total, sum)
		}
		grand += r.Total
	}
	if grand != 7 {
		t.Fatalf("grand total %d, want 7", grand)
	}
	if r := ct.Rows[0]; r.Label != "KP281" || r.Counts[0] != 2 || r.Counts[1] != 1 {
		t.Fatalf("KP281 row wrong: %+v", r)
	}
}

func TestCrosstabNormalizedRowsSumTo100(t *testing.T) {
	e := testEngine()
	ct, err := e.Crosstab(model.FieldProduct, model.FieldMaritalStatus, true)
	if err != nil {
		t.Fatalf("Crosstab: %v", err)
	}
	for _, r := range ct.Rows {
		var sum float64
		for _, p := range r.Pct {
			sum += p
		}
		if math.Abs(sum-100) > 1e-9 {
			t.Fatalf("row %s pct sums to %v", r.Label, sum)
		}
	}
}

func TestCrosstabIntegerColumn(t *testing.T) {
	// The survey slices Fitness (1..5) as categories.
	e := testEngine()
	ct, err := e.Crosstab(model.FieldProduct, model.FieldFitness, false)
	if err != nil {
		t.Fatalf("Crosstab: %v", err)
	}
	for _, c := range ct.Cols {
		switch c {
		case "2", "3", "5":
		default:
			t.Fatalf("unexpected fitness category %q", c)
		}
	}
}

func TestCrosstabNumericLabelOrder(t *testing.T) {
	// Miles categories must come out in numeric order, not with "100"
	// sorting before "80".
	records := []model.CustomerRecord{
		rec(model.ProductKP281, model.GenderMale, model.MaritalSingle, 22, 14, 3, 3, 35000, 100),
		rec(model.ProductKP281, model.GenderFemale, model.MaritalSingle, 25, 14, 2, 2, 32000, 80),
		rec(model.ProductKP481, model.GenderMale, model.MaritalPartnered, 30, 16, 3, 3, 52000, 120),
	}
	e := New(dataset.NewTable(records))
	ct, err := e.Crosstab(model.FieldMiles, model.FieldProduct, false)
	if err != nil {
		t.Fatalf("Crosstab: %v", err)
	}
	want := []string{"80", "100", "120"}
	if len(ct.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(ct.Rows), len(want))
	}
	for i, r := range ct.Rows {
		if r.Label != want[i] {
			t.Fatalf("row %d label %q, want %q", i, r.Label, want[i])
		}
	}
}

func TestCrosstabInvalidField(t *testing.T) {
	e := testEngine()
	var fe *model.InvalidFieldError
	if _, err := e.Crosstab("NotAField", model.FieldGender, false); !errors.As(err, &fe) {
		t.Fatalf("got %v, want InvalidFieldError", err)
	}
}
