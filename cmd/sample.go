package cmd

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/aerofitlabs/survey-insights/internal/model"
	"github.com/spf13/cobra"
)

var sampleOut string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a deterministic demo survey dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Create(sampleOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", sampleOut, err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		header := make([]string, len(model.Fields))
		for i, fld := range model.Fields {
			header[i] = fld.String()
		}
		if err := w.Write(header); err != nil {
			return err
		}

		// Fixed seed keeps the demo dataset reproducible run to run.
		rng := rand.New(rand.NewSource(42))
		for _, row := range sampleRecords(rng) {
			rec := []string{
				row.Product.String(),
				strconv.Itoa(row.Age),
				row.Gender.String(),
				strconv.Itoa(row.Education),
				row.MaritalStatus.String(),
				strconv.Itoa(row.Usage),
				strconv.Itoa(row.Fitness),
				strconv.FormatFloat(row.Income, 'f', 0, 64),
				strconv.FormatFloat(row.Miles, 'f', 0, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}

		fmt.Printf(">> Wrote demo dataset to %s\n", sampleOut)
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVar(&sampleOut, "out", "aerofit_treadmill_data.csv", "output CSV path")
}

type productShape struct {
	product  model.Product
	n        int
	ageLo    int
	ageHi    int
	eduLo    int
	eduHi    int
	usageLo  int
	usageHi  int
	fitLo    int
	fitHi    int
	incomeLo float64
	incomeHi float64
	milesLo  float64
	milesHi  float64
}

// sampleRecords models the three market segments: KP281 entry level, KP481
// mid range, KP781 premium.
func sampleRecords(rng *rand.Rand) []model.CustomerRecord {
	shapes := []productShape{
		{model.ProductKP281, 80, 18, 32, 12, 16, 2, 4, 1, 3, 28000, 45000, 40, 110},
		{model.ProductKP481, 60, 24, 38, 13, 16, 3, 4, 2, 4, 40000, 70000, 60, 150},
		{model.ProductKP781, 40, 26, 48, 14, 21, 4, 6, 3, 5, 70000, 105000, 100, 280},
	}

	var out []model.CustomerRecord
	for _, s := range shapes {
		for i := 0; i < s.n; i++ {
			rec := model.CustomerRecord{
				Product:       s.product,
				Age:           s.ageLo + rng.Intn(s.ageHi-s.ageLo+1),
				Education:     s.eduLo + rng.Intn(s.eduHi-s.eduLo+1),
				Usage:         s.usageLo + rng.Intn(s.usageHi-s.usageLo+1),
				Fitness:       s.fitLo + rng.Intn(s.fitHi-s.fitLo+1),
				Income:        s.incomeLo + rng.Float64()*(s.incomeHi-s.incomeLo),
				Miles:         s.milesLo + rng.Float64()*(s.milesHi-s.milesLo),
				Gender:        model.GenderFemale,
				MaritalStatus: model.MaritalSingle,
			}
			if rng.Intn(2) == 0 {
				rec.Gender = model.GenderMale
			}
			if rng.Intn(5) >= 2 {
				rec.MaritalStatus = model.MaritalPartnered
			}
			out = append(out, rec)
		}
	}
	return out
}
