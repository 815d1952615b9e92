package processor

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"go-healthwatch/fixtures"
	"go-healthwatch/types"
)

const (
	DiseaseCholera = "Cholera"
	DiseaseTyphoid = "Typhoid"

	WindowTwelveMonths = "Last 12 Months"
	WindowSixMonths    = "Last 6 Months"
	WindowThirtyDays   = "Last 30 Days"
)

var diseaseFactors = map[string]float64{
	DiseaseCholera: 0.8,
	DiseaseTyphoid: 0.6,
}

// trailing points kept per window; zero keeps the whole series
var windowSpans = map[string]int{
	WindowTwelveMonths: 0,
	WindowSixMonths:    6,
	WindowThirtyDays:   2,
}

// TrendQuery selects a region bundle and the filters applied to it.
type TrendQuery struct {
	Region  string `form:"region" json:"region"`
	Disease string `form:"disease" json:"disease"`
	Window  string `form:"window" json:"window"`
}

// Normalize replaces unknown filter values by their no-op equivalents.
func (q TrendQuery) Normalize(bundles map[string]types.RegionChartBundle) TrendQuery {
	if _, ok := bundles[q.Region]; !ok {
		q.Region = fixtures.AllRegions
	}
	if _, ok := diseaseFactors[q.Disease]; !ok {
		q.Disease = FilterAll
	}
	if _, ok := windowSpans[q.Window]; !ok {
		q.Window = WindowTwelveMonths
	}
	return q
}

// TransformTrends derives a fresh bundle for the query. The disease filter
// scales every series by a fixed factor and rounds half away from zero; the
// window filter trims the incidence series only. The input bundles are never
// modified.
func TransformTrends(bundles map[string]types.RegionChartBundle, q TrendQuery) types.RegionChartBundle {
	q = q.Normalize(bundles)
	out := bundles[q.Region].Clone()

	if factor, ok := diseaseFactors[q.Disease]; ok {
		out.Incidence = scaleSeries(out.Incidence, factor)
		out.Geo = scaleSeries(out.Geo, factor)
		out.Age = scaleSeries(out.Age, factor)
	}

	switch span := windowSpans[q.Window]; {
	case span == 0:
	case q.Window == WindowThirtyDays:
		out.Incidence = trailing(out.Incidence, span)
		for i := range out.Incidence {
			out.Incidence[i].Name = fmt.Sprintf("Period %d", i+1)
		}
	default:
		out.Incidence = trailing(out.Incidence, span)
	}
	return out
}

func scaleSeries(s types.ChartSeries, factor float64) types.ChartSeries {
	return lo.Map(s, func(p types.ChartPoint, _ int) types.ChartPoint {
		return types.ChartPoint{Name: p.Name, Value: math.Round(p.Value * factor)}
	})
}

func trailing(s types.ChartSeries, n int) types.ChartSeries {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:].Clone()
}

type TrendFilterOptions struct {
	Regions  []string `json:"regions"`
	Diseases []string `json:"diseases"`
	Windows  []string `json:"windows"`
}

func TrendOptions(bundles map[string]types.RegionChartBundle) TrendFilterOptions {
	regions := lo.Without(lo.Keys(bundles), fixtures.AllRegions)
	sort.Strings(regions)
	return TrendFilterOptions{
		Regions:  append([]string{fixtures.AllRegions}, regions...),
		Diseases: []string{FilterAll, DiseaseCholera, DiseaseTyphoid},
		Windows:  []string{WindowTwelveMonths, WindowSixMonths, WindowThirtyDays},
	}
}
