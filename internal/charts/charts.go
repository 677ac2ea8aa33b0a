package charts

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vytor/lotto/internal/models"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Width  string // Chart width (e.g., "900px")
	Height string // Chart height (e.g., "500px")
	Theme  string
	Color  string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "400px",
		Theme:  "light",
		Color:  "#5470C6",
	}
}

// DataPoint represents a single bar.
type DataPoint struct {
	Label string
	Value float64
}

// FrequencyPoints orders the frequency report by number so the x-axis reads 1..34.
func FrequencyPoints(freqs []models.FrequencyStat) []DataPoint {
	sorted := make([]models.FrequencyStat, len(freqs))
	copy(sorted, freqs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	points := make([]DataPoint, len(sorted))
	for i, f := range sorted {
		points[i] = DataPoint{Label: strconv.Itoa(f.Number), Value: float64(f.Count)}
	}
	return points
}

// AverageGapPoints keeps only numbers with an average gap, rounded to one decimal.
func AverageGapPoints(stats []models.NumberStat) []DataPoint {
	points := make([]DataPoint, 0, len(stats))
	for _, s := range stats {
		if s.AverageGapDays == nil {
			continue
		}
		points = append(points, DataPoint{
			Label: strconv.Itoa(s.Number),
			Value: math.Round(*s.AverageGapDays*10) / 10,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		a, _ := strconv.Atoi(points[i].Label)
		b, _ := strconv.Atoi(points[j].Label)
		return a < b
	})
	return points
}

func newBar(title, subtitle, series, yName string, data []DataPoint, config ChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithColorsOpts(opts.Colors{config.Color}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Number"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)

	labels := make([]string, len(data))
	values := make([]opts.BarData, len(data))
	for i, p := range data {
		labels[i] = p.Label
		values[i] = opts.BarData{Value: p.Value}
	}
	bar.SetXAxis(labels).AddSeries(series, values)
	return bar
}

// RenderStatsPage writes an HTML page with a frequency bar chart and an
// average-gap bar chart.
func RenderStatsPage(w io.Writer, freqs []models.FrequencyStat, stats []models.NumberStat, draws int, config ChartConfig) error {
	subtitle := fmt.Sprintf("%d draws", draws)

	page := components.NewPage()
	page.PageTitle = "Lotto statistics"
	page.AddCharts(
		newBar("Number frequency", subtitle, "Count", "Draws", FrequencyPoints(freqs), config),
		newBar("Average days between appearances", subtitle, "Average gap", "Days", AverageGapPoints(stats), config),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}
