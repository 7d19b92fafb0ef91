package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aerofitlabs/survey-insights/internal/config"
	"github.com/aerofitlabs/survey-insights/internal/dataset"
	"github.com/aerofitlabs/survey-insights/internal/model"
	"github.com/aerofitlabs/survey-insights/internal/stats"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dataset.csv]",
	Short: "Print a one-shot survey analysis report to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		path := cfg.Dataset.Path
		if len(args) == 1 {
			path = args[0]
		}

		table, err := dataset.Load(path)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		engine := stats.New(table)

		printDescribe(engine, table.Len())
		printDemographics(engine)
		if err := printContingency(engine); err != nil {
			return err
		}
		if err := printCorrelation(engine); err != nil {
			return err
		}
		printProfiles(engine)

		return nil
	},
}

func printDescribe(engine *stats.Engine, rows int) {
	fmt.Printf("=== Dataset Overview (%d customers) ===\n", rows)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "field\tcount\tmean\tmedian\tstd\tmin\tmax")
	for _, fs := range engine.Describe() {
		std := "-"
		if fs.Std != nil {
			std = fmt.Sprintf("%.2f", *fs.Std)
		}
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%s\t%.0f\t%.0f\n", fs.Field, fs.Count, fs.Mean, fs.Median, std, fs.Min, fs.Max)
	}
	_ = w.Flush()
}

func printDemographics(engine *stats.Engine) {
	fmt.Println("\n=== Average Customer Metrics by Product ===")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "product\tmetric\tcount\tmean\tmedian\tstd\tmin\tmax")
	for _, metric := range model.NumericFields {
		sum, err := engine.Summarize(stats.Query{GroupBy: []model.Field{model.FieldProduct}, Metric: metric})
		if err != nil {
			continue
		}
		for _, seg := range sum.Segments {
			std := "-"
			if seg.Std != nil {
				std = fmt.Sprintf("%.2f", *seg.Std)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%s\t%.0f\t%.0f\n",
				seg.Key[0], metric, seg.Count, seg.Mean, seg.Median, std, seg.Min, seg.Max)
		}
	}
	_ = w.Flush()
}

func printContingency(engine *stats.Engine) error {
	fmt.Println("\n=== Contingency Tables and Chi-Square Tests ===")
	for _, col := range []model.Field{model.FieldGender, model.FieldMaritalStatus} {
		ct, err := engine.Crosstab(model.FieldProduct, col, false)
		if err != nil {
			return err
		}
		fmt.Printf("\nProduct vs %s:\n", col)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprint(w, "product")
		for _, c := range ct.Cols {
			fmt.Fprintf(w, "\t%s", c)
		}
		fmt.Fprintln(w)
		for _, r := range ct.Rows {
			fmt.Fprint(w, r.Label)
			for _, n := range r.Counts {
				fmt.Fprintf(w, "\t%d", n)
			}
			fmt.Fprintln(w)
		}
		_ = w.Flush()

		res, err := engine.ChiSquare(model.FieldProduct, col)
		if err != nil {
			return err
		}
		fmt.Printf("Chi-square: stat=%.4f dof=%d p-value=%.4f\n", res.Statistic, res.DoF, res.PValue)
	}
	return nil
}

func printCorrelation(engine *stats.Engine) error {
	fmt.Println("\n=== Correlation Matrix ===")
	m, err := engine.CorrelationMatrix(nil)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, " ")
	for _, f := range m.Fields {
		fmt.Fprintf(w, "\t%s", f)
	}
	fmt.Fprintln(w)
	for i, f := range m.Fields {
		fmt.Fprint(w, f)
		for j := range m.Fields {
			if v := m.Values[i][j]; v != nil {
				fmt.Fprintf(w, "\t%.3f", *v)
			} else {
				fmt.Fprint(w, "\t-")
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func printProfiles(engine *stats.Engine) {
	fmt.Println("\n=== Product Profiles ===")
	for _, p := range engine.ProductProfiles() {
		fmt.Printf("\nProfile for %s (%d customers):\n", p.Product, p.Count)
		fmt.Printf("  Average Age: %.1f years\n", p.MeanAge)
		fmt.Printf("  Average Education: %.1f years\n", p.MeanEducation)
		fmt.Printf("  Average Income: $%.2f (median $%.2f)\n", p.MeanIncome, p.MedianIncome)
		fmt.Printf("  Average Fitness Level: %.1f\n", p.MeanFitness)
		fmt.Printf("  Average Weekly Usage: %.1f times\n", p.MeanUsage)
		fmt.Printf("  Average Weekly Miles: %.1f\n", p.MeanMiles)
		fmt.Printf("  Gender Split: Female %.1f%% / Male %.1f%%\n",
			p.GenderSplit[model.GenderFemale.String()], p.GenderSplit[model.GenderMale.String()])
	}
}
