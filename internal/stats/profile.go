package stats

import (
	"sort"

	"github.com/aerofitlabs/survey-insights/internal/model"
)

// Overview is the headline view of the dataset: totals plus market share per
// product model.
type Overview struct {
	TotalCustomers int            `json:"total_customers"`
	MeanAge        float64        `json:"mean_age"`
	MeanIncome     float64        `json:"mean_income"`
	MarketShare    []ProductShare `json:"market_share"`
}

type ProductShare struct {
	Product model.Product `json:"product"`
	Count   int           `json:"count"`
	Pct     float64       `json:"pct"`
}

func (e *Engine) Overview() *Overview {
	var age, income welford
	shares := map[model.Product]int{}
	for _, rec := range e.table.Records() {
		age.add(float64(rec.Age))
		income.add(rec.Income)
		shares[rec.Product]++
	}

	ov := &Overview{TotalCustomers: e.table.Len(), MeanAge: age.mean, MeanIncome: income.mean}
	for p, n := range shares {
		ov.MarketShare = append(ov.MarketShare, ProductShare{
			Product: p,
			Count:   n,
			Pct:     float64(n) / float64(e.table.Len()) * 100,
		})
	}
	sort.Slice(ov.MarketShare, func(i, j int) bool {
		return ov.MarketShare[i].Product < ov.MarketShare[j].Product
	})
	return ov
}

// ProductProfile aggregates the average customer of one treadmill model,
// with the gender split in percent.
type ProductProfile struct {
	Product       model.Product      `json:"product"`
	Count         int                `json:"count"`
	MeanAge       float64            `json:"mean_age"`
	MeanEducation float64            `json:"mean_education"`
	MeanUsage     float64            `json:"mean_usage"`
	MedianUsage   float64            `json:"median_usage"`
	MeanFitness   float64            `json:"mean_fitness"`
	MedianFitness float64            `json:"median_fitness"`
	MeanIncome    float64            `json:"mean_income"`
	MedianIncome  float64            `json:"median_income"`
	MeanMiles     float64            `json:"mean_miles"`
	MedianMiles   float64            `json:"median_miles"`
	GenderSplit   map[string]float64 `json:"gender_split"`
}

// ProductProfiles builds one profile per product present in the table,
// ordered by model code.
func (e *Engine) ProductProfiles() []ProductProfile {
	type acc struct {
		age, edu, usage, fitness, income, miles     welford
		usageVals, fitnessVals, incomeVals, mileage []float64
		gender                                      map[model.Gender]int
		count                                       int
	}
	accs := map[model.Product]*acc{}
	for _, rec := range e.table.Records() {
		a := accs[rec.Product]
		if a == nil {
			a = &acc{gender: map[model.Gender]int{}}
			accs[rec.Product] = a
		}
		a.count++
		a.age.add(float64(rec.Age))
		a.edu.add(float64(rec.Education))
		a.usage.add(float64(rec.Usage))
		a.fitness.add(float64(rec.Fitness))
		a.income.add(rec.Income)
		a.miles.add(rec.Miles)
		a.usageVals = append(a.usageVals, float64(rec.Usage))
		a.fitnessVals = append(a.fitnessVals, float64(rec.Fitness))
		a.incomeVals = append(a.incomeVals, rec.Income)
		a.mileage = append(a.mileage, rec.Miles)
		a.gender[rec.Gender]++
	}

	out := make([]ProductProfile, 0, len(accs))
	for p, a := range accs {
		pp := ProductProfile{
			Product:       p,
			Count:         a.count,
			MeanAge:       a.age.mean,
			MeanEducation: a.edu.mean,
			MeanUsage:     a.usage.mean,
			MedianUsage:   median(a.usageVals),
			MeanFitness:   a.fitness.mean,
			MedianFitness: median(a.fitnessVals),
			MeanIncome:    a.income.mean,
			MedianIncome:  median(a.incomeVals),
			MeanMiles:     a.miles.mean,
			MedianMiles:   median(a.mileage),
			GenderSplit:   map[string]float64{},
		}
		for g, n := range a.gender {
			pp.GenderSplit[g.String()] = float64(n) / float64(a.count) * 100
		}
		out = append(out, pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
	return out
}
