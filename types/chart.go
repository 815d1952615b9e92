package types

type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ChartSeries []ChartPoint

func (s ChartSeries) Clone() ChartSeries {
	if s == nil {
		return nil
	}
	out := make(ChartSeries, len(s))
	copy(out, s)
	return out
}

// RegionChartBundle holds the three breakdowns shown for one region.
type RegionChartBundle struct {
	Incidence ChartSeries `json:"incidence"`
	Geo       ChartSeries `json:"geo"`
	Age       ChartSeries `json:"age"`
}

func (b RegionChartBundle) Clone() RegionChartBundle {
	return RegionChartBundle{
		Incidence: b.Incidence.Clone(),
		Geo:       b.Geo.Clone(),
		Age:       b.Age.Clone(),
	}
}
