package stats

import (
	"math"
	"sort"
)

// welford accumulates count/mean/variance/min/max in one pass.
// Variance is the sample variance (ddof=1), matching the convention of the
// statistical packages this service's numbers are compared against.
type welford struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func (w *welford) add(x float64) {
	if w.n == 0 {
		w.min, w.max = x, x
	} else {
		if x < w.min {
			w.min = x
		}
		if x > w.max {
			w.max = x
		}
	}
	w.n++
	delta := x - w.mean
	w.mean += delta / float64(w.n)
	w.m2 += delta * (x - w.mean)
}

// std returns the sample standard deviation. Undefined for fewer than two
// observations.
func (w *welford) std() (float64, bool) {
	if w.n < 2 {
		return 0, false
	}
	return math.Sqrt(w.m2 / float64(w.n-1)), true
}

// median returns the middle value of vals, averaging the two middle values
// for even counts. vals is sorted in place; it must be non-empty.
func median(vals []float64) float64 {
	sort.Float64s(vals)
	m := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[m]
	}
	return (vals[m-1] + vals[m]) / 2
}

// pearsonAcc accumulates the sums needed for a Pearson correlation
// coefficient between two series observed pairwise.
type pearsonAcc struct {
	n     float64
	sumX  float64
	sumY  float64
	sumXX float64
	sumYY float64
	sumXY float64
}

func (p *pearsonAcc) add(x, y float64) {
	p.n++
	p.sumX += x
	p.sumY += y
	p.sumXX += x * x
	p.sumYY += y * y
	p.sumXY += x * y
}

// r returns the correlation coefficient clamped to [-1, 1]. Undefined when
// fewer than two pairs were seen or either series is constant.
func (p *pearsonAcc) r() (float64, bool) {
	if p.n < 2 {
		return 0, false
	}
	denom := math.Sqrt((p.n*p.sumXX - p.sumX*p.sumX) * (p.n*p.sumYY - p.sumY*p.sumY))
	if denom == 0 {
		return 0, false
	}
	r := (p.n*p.sumXY - p.sumX*p.sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}
