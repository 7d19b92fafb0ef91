package stats

import (
	"sort"

	"github.com/aerofitlabs/survey-insights/internal/model"
)

// Crosstab is a contingency table between two categorical renderings.
// Rows and Cols are sorted by label, numeric labels by value; Pct holds
// row-normalized percentages when requested.
type Crosstab struct {
	Row  model.Field   `json:"row"`
	Col  model.Field   `json:"col"`
	Cols []string      `json:"cols"`
	Rows []CrosstabRow `json:"rows"`
}

type CrosstabRow struct {
	Label  string    `json:"label"`
	Total  int       `json:"total"`
	Counts []int     `json:"counts"`
	Pct    []float64 `json:"pct,omitempty"`
}

// Crosstab tabulates row-field against col-field. With normalize set, each
// row additionally carries percentages summing to 100.
func (e *Engine) Crosstab(row, col model.Field, normalize bool) (*Crosstab, error) {
	if _, err := model.ParseField(row.String()); err != nil {
		return nil, err
	}
	if _, err := model.ParseField(col.String()); err != nil {
		return nil, err
	}

	counts := map[string]map[string]int{}
	colSet := map[string]struct{}{}
	for _, rec := range e.table.Records() {
		rv, _ := rec.CategoricalValue(row)
		cv, _ := rec.CategoricalValue(col)
		if counts[rv] == nil {
			counts[rv] = map[string]int{}
		}
		counts[rv][cv]++
		colSet[cv] = struct{}{}
	}

	ct := &Crosstab{Row: row, Col: col}
	for c := range colSet {
		ct.Cols = append(ct.Cols, c)
	}
	sort.Slice(ct.Cols, func(i, j int) bool { return labelLess(ct.Cols[i], ct.Cols[j]) })

	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labelLess(labels[i], labels[j]) })

	for _, l := range labels {
		r := CrosstabRow{Label: l, Counts: make([]int, len(ct.Cols))}
		for i, c := range ct.Cols {
			r.Counts[i] = counts[l][c]
			r.Total += counts[l][c]
		}
		if normalize && r.Total > 0 {
			r.Pct = make([]float64, len(ct.Cols))
			for i := range r.Counts {
				r.Pct[i] = float64(r.Counts[i]) / float64(r.Total) * 100
			}
		}
		ct.Rows = append(ct.Rows, r)
	}
	return ct, nil
}
