package stats

import (
	"fmt"
	"math"

	"github.com/aerofitlabs/survey-insights/internal/model"
)

// ChiSquareResult reports a chi-square test of independence between two
// categorical fields.
type ChiSquareResult struct {
	Row       model.Field `json:"row"`
	Col       model.Field `json:"col"`
	Statistic float64     `json:"statistic"`
	DoF       int         `json:"dof"`
	PValue    float64     `json:"p_value"`
}

// ChiSquare runs the independence test over the contingency table of row
// against col. Expected cell counts come from the marginal totals.
func (e *Engine) ChiSquare(row, col model.Field) (*ChiSquareResult, error) {
	ct, err := e.Crosstab(row, col, false)
	if err != nil {
		return nil, err
	}
	if len(ct.Rows) < 2 || len(ct.Cols) < 2 {
		return nil, fmt.Errorf("chi-square needs at least a 2x2 table, got %dx%d", len(ct.Rows), len(ct.Cols))
	}

	grand := 0
	colTotals := make([]int, len(ct.Cols))
	for _, r := range ct.Rows {
		grand += r.Total
		for i, c := range r.Counts {
			colTotals[i] += c
		}
	}
	if grand == 0 {
		return nil, fmt.Errorf("chi-square over empty table")
	}

	var stat float64
	for _, r := range ct.Rows {
		for i, obs := range r.Counts {
			exp := float64(r.Total) * float64(colTotals[i]) / float64(grand)
			if exp == 0 {
				continue
			}
			d := float64(obs) - exp
			stat += d * d / exp
		}
	}

	dof := (len(ct.Rows) - 1) * (len(ct.Cols) - 1)
	return &ChiSquareResult{
		Row:       row,
		Col:       col,
		Statistic: stat,
		DoF:       dof,
		PValue:    chiSquareSurvival(stat, dof),
	}, nil
}

// chiSquareSurvival returns P(X >= x) for a chi-square distribution with k
// degrees of freedom, i.e. the regularized upper incomplete gamma
// Q(k/2, x/2).
func chiSquareSurvival(x float64, k int) float64 {
	if x <= 0 {
		return 1
	}
	return gammaIncQ(float64(k)/2, x/2)
}

const (
	gammaEps     = 1e-14
	gammaMaxIter = 500
)

// gammaIncQ computes the regularized upper incomplete gamma function Q(a, x)
// using the series expansion for x < a+1 and the continued fraction
// otherwise.
func gammaIncQ(a, x float64) float64 {
	if x < a+1 {
		return 1 - gammaSeriesP(a, x)
	}
	return gammaContinuedQ(a, x)
}

func gammaSeriesP(a, x float64) float64 {
	if x == 0 {
		return 0
	}
	lg, _ := math.Lgamma(a)
	ap := a
	sum := 1 / a
	del := sum
	for i := 0; i < gammaMaxIter; i++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*gammaEps {
			break
		}
	}
	return sum * math.Exp(-x+a*math.Log(x)-lg)
}

func gammaContinuedQ(a, x float64) float64 {
	lg, _ := math.Lgamma(a)
	tiny := 1e-300
	b := x + 1 - a
	c := 1 / tiny
	d := 1 / b
	h := d
	for i := 1; i <= gammaMaxIter; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = b + an/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < gammaEps {
			break
		}
	}
	return math.Exp(-x+a*math.Log(x)-lg) * h
}
