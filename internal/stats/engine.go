// Package stats derives segment-level statistics from the loaded survey
// table: group-by summaries, cross-tabulations, Pearson correlations and
// chi-square independence tests. Every computation is a pure function over
// the read-only table, so an Engine is safe for concurrent use.
package stats

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aerofitlabs/survey-insights/internal/dataset"
	"github.com/aerofitlabs/survey-insights/internal/model"
)

type Engine struct {
	table *dataset.Table
}

func New(table *dataset.Table) *Engine {
	return &Engine{table: table}
}

// Query describes one summary request: group the table by GroupBy, summarize
// Metric per group, and optionally report the per-group Pearson correlation
// between Metric and CorrelateWith. An empty GroupBy yields a single segment
// covering the whole table.
type Query struct {
	GroupBy       []model.Field
	Metric        model.Field
	CorrelateWith model.Field // optional; empty means no correlation
}

// Aggregate holds the statistics for one segment. Median averages the two
// middle values for even counts. Std is the sample standard deviation
// (ddof=1) and is absent for segments with fewer than two members; Corr is
// absent unless requested and defined.
type Aggregate struct {
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Std    *float64 `json:"std,omitempty"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	Corr   *float64 `json:"corr,omitempty"`
}

// Segment is one group of the summary. Key holds one category label per
// GroupBy field, in query order.
type Segment struct {
	Key []string `json:"key"`
	Aggregate
}

// SegmentSummary maps each non-empty group to its aggregate statistics.
// Segments are ordered by key so output is deterministic; numeric labels
// order by value.
type SegmentSummary struct {
	GroupBy       []model.Field `json:"group_by"`
	Metric        model.Field   `json:"metric"`
	CorrelateWith model.Field   `json:"correlate_with,omitempty"`
	Segments      []Segment     `json:"segments"`
}

// Segment looks up one group by its key tuple.
func (s *SegmentSummary) Segment(key ...string) (Aggregate, bool) {
	for _, seg := range s.Segments {
		if len(seg.Key) != len(key) {
			continue
		}
		match := true
		for i := range key {
			if seg.Key[i] != key[i] {
				match = false
				break
			}
		}
		if match {
			return seg.Aggregate, true
		}
	}
	return Aggregate{}, false
}

type groupAcc struct {
	key  []string
	agg  welford
	vals []float64
	corr pearsonAcc
}

// Summarize computes per-group statistics for q.Metric. Groups with zero
// members never appear in the result. An unknown or non-numeric field yields
// a *model.InvalidFieldError.
func (e *Engine) Summarize(q Query) (*SegmentSummary, error) {
	for _, f := range q.GroupBy {
		if _, err := model.ParseField(f.String()); err != nil {
			return nil, err
		}
	}
	if _, err := model.ParseNumericField(q.Metric.String()); err != nil {
		return nil, err
	}
	withCorr := q.CorrelateWith != ""
	if withCorr {
		if _, err := model.ParseNumericField(q.CorrelateWith.String()); err != nil {
			return nil, err
		}
	}

	groups := map[string]*groupAcc{}
	for _, rec := range e.table.Records() {
		key := make([]string, len(q.GroupBy))
		for i, f := range q.GroupBy {
			key[i], _ = rec.CategoricalValue(f)
		}
		id := strings.Join(key, "\x1f")

		g := groups[id]
		if g == nil {
			g = &groupAcc{key: key}
			groups[id] = g
		}
		x, _ := rec.NumericValue(q.Metric)
		g.agg.add(x)
		g.vals = append(g.vals, x)
		if withCorr {
			y, _ := rec.NumericValue(q.CorrelateWith)
			g.corr.add(x, y)
		}
	}

	out := &SegmentSummary{GroupBy: q.GroupBy, Metric: q.Metric, CorrelateWith: q.CorrelateWith}
	for _, g := range groups {
		seg := Segment{
			Key: g.key,
			Aggregate: Aggregate{
				Count:  g.agg.n,
				Mean:   g.agg.mean,
				Median: median(g.vals),
				Min:    g.agg.min,
				Max:    g.agg.max,
			},
		}
		if sd, ok := g.agg.std(); ok {
			seg.Std = &sd
		}
		if withCorr {
			if r, ok := g.corr.r(); ok {
				seg.Corr = &r
			}
		}
		out.Segments = append(out.Segments, seg)
	}
	sort.Slice(out.Segments, func(i, j int) bool {
		a, b := out.Segments[i].Key, out.Segments[j].Key
		for k := range a {
			if a[k] != b[k] {
				return labelLess(a[k], b[k])
			}
		}
		return false
	})
	return out, nil
}

// labelLess orders group labels. Labels that are both numeric compare by
// value, so grouping by Usage or Miles puts "10" after "2"; everything else
// compares as strings.
func labelLess(a, b string) bool {
	x, errX := strconv.ParseFloat(a, 64)
	y, errY := strconv.ParseFloat(b, 64)
	if errX == nil && errY == nil && x != y {
		return x < y
	}
	return a < b
}

// Correlate returns the Pearson correlation between two numeric fields over
// the full collection. Returns 0 when the coefficient is undefined (fewer
// than two rows or a constant column).
func (e *Engine) Correlate(a, b model.Field) (float64, error) {
	if _, err := model.ParseNumericField(a.String()); err != nil {
		return 0, err
	}
	if _, err := model.ParseNumericField(b.String()); err != nil {
		return 0, err
	}
	var acc pearsonAcc
	for _, rec := range e.table.Records() {
		x, _ := rec.NumericValue(a)
		y, _ := rec.NumericValue(b)
		acc.add(x, y)
	}
	r, _ := acc.r()
	return r, nil
}

// CorrelationMatrix holds pairwise Pearson coefficients. A nil cell means
// the coefficient is undefined for that pair.
type CorrelationMatrix struct {
	Fields []model.Field `json:"fields"`
	Values [][]*float64  `json:"values"`
}

// CorrelationMatrix computes the symmetric correlation matrix over the given
// numeric fields; nil fields means all six numeric columns.
func (e *Engine) CorrelationMatrix(fields []model.Field) (*CorrelationMatrix, error) {
	if len(fields) == 0 {
		fields = model.NumericFields
	}
	for _, f := range fields {
		if _, err := model.ParseNumericField(f.String()); err != nil {
			return nil, err
		}
	}

	n := len(fields)
	accs := make([][]pearsonAcc, n)
	for i := range accs {
		accs[i] = make([]pearsonAcc, n)
	}
	for _, rec := range e.table.Records() {
		vals := make([]float64, n)
		for i, f := range fields {
			vals[i], _ = rec.NumericValue(f)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				accs[i][j].add(vals[i], vals[j])
			}
		}
	}

	m := &CorrelationMatrix{Fields: fields, Values: make([][]*float64, n)}
	one := 1.0
	for i := 0; i < n; i++ {
		m.Values[i] = make([]*float64, n)
		m.Values[i][i] = &one
		for j := 0; j < i; j++ {
			if r, ok := accs[i][j].r(); ok {
				v := r
				m.Values[i][j] = &v
				m.Values[j][i] = &v
			}
		}
	}
	return m, nil
}

// FieldSummary is one row of Describe.
type FieldSummary struct {
	Field  model.Field `json:"field"`
	Count  int         `json:"count"`
	Mean   float64     `json:"mean"`
	Median float64     `json:"median"`
	Std    *float64    `json:"std,omitempty"`
	Min    float64     `json:"min"`
	Max    float64     `json:"max"`
}

// Describe summarizes every numeric column over the full table.
func (e *Engine) Describe() []FieldSummary {
	out := make([]FieldSummary, 0, len(model.NumericFields))
	for _, f := range model.NumericFields {
		var w welford
		vals := make([]float64, 0, e.table.Len())
		for _, rec := range e.table.Records() {
			x, _ := rec.NumericValue(f)
			w.add(x)
			vals = append(vals, x)
		}
		fs := FieldSummary{Field: f, Count: w.n, Mean: w.mean, Min: w.min, Max: w.max}
		if len(vals) > 0 {
			fs.Median = median(vals)
		}
		if sd, ok := w.std(); ok {
			fs.Std = &sd
		}
		out = append(out, fs)
	}
	return out
}
