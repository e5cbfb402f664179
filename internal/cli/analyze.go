package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/k2stream/k2fsr/internal/validation"
	"github.com/k2stream/k2fsr/pkg/crypto/fsra"
)

type laneStats struct {
	Lane      int     `json:"lane"`
	Count     int     `json:"count"`
	Mean      float64 `json:"mean"`
	Std       float64 `json:"std"`
	ChiSquare float64 `json:"chi_square_uniform"`
}

func NewAnalyzeCommand() *cobra.Command {
	var (
		profileName string
		seedSpec    string
		steps       int
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Histogram the feedback byte lanes over many steps",
		Long: `Step the register and collect the feedback words it produces, then
render per-lane byte histograms as an HTML page and write summary
statistics as JSON. A healthy configuration should look close to
uniform over long runs.`,
		Example: `  # Analyze 4096 steps of the reference seed
  k2fsr analyze --seed BE3CA984,974E6719,86916EFF,F52DACF9,960329B5

  # Longer run, custom report directory
  k2fsr analyze --seed 1,2,3,4,5 --steps 65536 --out reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, profile, _, err := loadProfile(profileName)
			if err != nil {
				return err
			}
			if err := validation.ValidateSteps(steps); err != nil {
				return err
			}

			seed, err := parseSeed(seedSpec)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}

			_, table, err := fsra.Build(profile.FieldConfig())
			if err != nil {
				return fmt.Errorf("failed to build table: %w", err)
			}

			histograms, stats := collectLaneHistograms(fsra.NewRegister(seed), table, steps)

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			jsonPath := filepath.Join(outDir, fmt.Sprintf("%s_lane_stats.json", name))
			if err := saveJSON(jsonPath, stats); err != nil {
				return fmt.Errorf("failed to write stats: %w", err)
			}

			page := components.NewPage()
			for lane := 0; lane < fsra.LaneCount; lane++ {
				title := fmt.Sprintf("%s feedback lane %d over %d steps", name, lane, steps)
				page.AddCharts(newLaneChart(title, histograms[lane], stats[lane]))
			}

			htmlPath := filepath.Join(outDir, fmt.Sprintf("%s_lane_histograms.html", name))
			f, err := os.Create(htmlPath)
			if err != nil {
				return fmt.Errorf("failed to create html report: %w", err)
			}
			defer f.Close()
			if err := page.Render(f); err != nil {
				return fmt.Errorf("failed to render html report: %w", err)
			}

			fmt.Println("Histogram page:", htmlPath)
			fmt.Println("Stats JSON:", jsonPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Field profile to use")
	cmd.Flags().StringVarP(&seedSpec, "seed", "s", "", "Register seed: five 32-bit hex words")
	cmd.Flags().IntVarP(&steps, "steps", "n", 4096, "Number of register steps to sample")
	cmd.Flags().StringVarP(&outDir, "out", "o", "analysis", "Output directory for reports")

	return cmd
}

// collectLaneHistograms steps the register, binning each feedback word's four
// byte lanes into 256-bucket histograms.
func collectLaneHistograms(register *fsra.Register, table *fsra.AlphaTable, steps int) ([fsra.LaneCount][256]int, []laneStats) {
	var histograms [fsra.LaneCount][256]int

	for i := 0; i < steps; i++ {
		register.Step(table)
		feedback := register.Words()[fsra.RegisterSize-1]
		for lane := 0; lane < fsra.LaneCount; lane++ {
			histograms[lane][(feedback>>(8*uint(lane)))&0xFF]++
		}
	}

	stats := make([]laneStats, fsra.LaneCount)
	for lane := 0; lane < fsra.LaneCount; lane++ {
		stats[lane] = computeLaneStats(lane, histograms[lane], steps)
	}

	return histograms, stats
}

func computeLaneStats(lane int, histogram [256]int, steps int) laneStats {
	if steps == 0 {
		return laneStats{Lane: lane}
	}

	var mean float64
	for value, count := range histogram {
		mean += float64(value) * float64(count)
	}
	mean /= float64(steps)

	var variance float64
	for value, count := range histogram {
		d := float64(value) - mean
		variance += d * d * float64(count)
	}
	variance /= float64(steps)

	expected := float64(steps) / 256.0
	var chiSquare float64
	for _, count := range histogram {
		d := float64(count) - expected
		chiSquare += d * d / expected
	}

	return laneStats{
		Lane:      lane,
		Count:     steps,
		Mean:      mean,
		Std:       math.Sqrt(variance),
		ChiSquare: chiSquare,
	}
}

func toBarItems(histogram [256]int) []opts.BarData {
	out := make([]opts.BarData, len(histogram))
	for i, v := range histogram {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newLaneChart(title string, histogram [256]int, stats laneStats) *charts.Bar {
	xLabels := make([]string, 256)
	for i := range xLabels {
		xLabels[i] = fmt.Sprintf("%02X", i)
	}

	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, chi2=%.1f",
		stats.Count, stats.Mean, stats.Std, stats.ChiSquare)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "400px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(histogram)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
