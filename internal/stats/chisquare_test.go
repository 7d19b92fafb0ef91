package stats

import (
	"math"
	"testing"

	"github.com/aerofitlabs/survey-insights/internal/dataset"
	"github.com/aerofitlabs/survey-insights/internal/model"
)

// chiSquareFixture builds records realizing the 2x2 contingency table
//
//	          Single  Partnered
//	Male        10       20
//	Female      30       40
func chiSquareFixture() *Engine {
	var records []model.CustomerRecord
	add := func(n int, g model.Gender, m model.MaritalStatus) {
		for i := 0; i < n; i++ {
			records = append(records, rec(model.ProductKP281, g, m, 25, 14, 3, 3, 40000, 80))
		}
	}
	add(10, model.GenderMale, model.MaritalSingle)
	add(20, model.GenderMale, model.MaritalPartnered)
	add(30, model.GenderFemale, model.MaritalSingle)
	add(40, model.GenderFemale, model.MaritalPartnered)
	return New(dataset.NewTable(records))
}

func TestChiSquareKnownTable(t *testing.T) {
	e := chiSquareFixture()
	res, err := e.ChiSquare(model.FieldGender, model.FieldMaritalStatus)
	if err != nil {
		t.Fatalf("ChiSquare: %v", err)
	}

	// Expected counts 12/18/28/42 give stat = 4/12 + 4/18 + 4/28 + 4/42.
	wantStat := 4.0/12 + 4.0/18 + 4.0/28 + 4.0/42
	if math.Abs(res.Statistic-wantStat) > 1e-9 {
		t.Fatalf("statistic = %v, want %v", res.Statistic, wantStat)
	}
	if res.DoF != 1 {
		t.Fatalf("dof = %d, want 1", res.DoF)
	}
	// Survival of chi2(1) at the statistic; reference value from scipy.
	if math.Abs(res.PValue-0.37299848) > 1e-6 {
		t.Fatalf("p-value = %v, want ~0.372998", res.PValue)
	}
}

func TestChiSquarePValueRange(t *testing.T) {
	e := testEngine()
	for _, col := range []model.Field{model.FieldGender, model.FieldMaritalStatus, model.FieldFitness} {
		res, err := e.ChiSquare(model.FieldProduct, col)
		if err != nil {
			t.Fatalf("ChiSquare(Product, %s): %v", col, err)
		}
		if res.PValue < 0 || res.PValue > 1 {
			t.Fatalf("p-value %v out of [0,1]", res.PValue)
		}
		if res.Statistic < 0 {
			t.Fatalf("statistic %v negative", res.Statistic)
		}
	}
}

func TestChiSquareRejectsDegenerate(t *testing.T) {
	// single product means a 1xN table
	records := []model.CustomerRecord{
		rec(model.ProductKP281, model.GenderMale, model.MaritalSingle, 22, 14, 3, 3, 35000, 80),
		rec(model.ProductKP281, model.GenderFemale, model.MaritalSingle, 24, 14, 3, 3, 36000, 85),
	}
	e := New(dataset.NewTable(records))
	if _, err := e.ChiSquare(model.FieldProduct, model.FieldGender); err == nil {
		t.Fatal("expected error for 1x2 table")
	}
}

func TestGammaIncQReference(t *testing.T) {
	// Spot checks against scipy.special.gammaincc.
	cases := []struct {
		a, x, want float64
	}{
		{0.5, 0.5, 0.31731050786291415}, // chi2(1) at x=1
		{1, 1, 0.36787944117144233},     // chi2(2) at x=2
		{2.5, 3, 0.30621891841327853},   // chi2(5) at x=6
		{5, 2, 0.9473469826562888},
	}
	for _, c := range cases {
		got := gammaIncQ(c.a, c.x)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("gammaIncQ(%v, %v) = %v, want %v", c.a, c.x, got, c.want)
		}
	}
}
