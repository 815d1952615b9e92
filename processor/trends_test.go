package processor

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-healthwatch/fixtures"
	"go-healthwatch/types"
)

func TestTransformTrendsAllIsIdentity(t *testing.T) {
	bundles := fixtures.RegionBundles()
	for region, base := range bundles {
		got := TransformTrends(bundles, TrendQuery{Region: region, Disease: FilterAll, Window: WindowTwelveMonths})
		if diff := cmp.Diff(base, got); diff != "" {
			t.Errorf("%s: identity transform changed values (-want +got):\n%s", region, diff)
		}
	}
}

func TestTransformTrendsDeterministicAndNonMutating(t *testing.T) {
	bundles := fixtures.RegionBundles()
	before := bundles["Tripura"].Clone()

	q := TrendQuery{Region: "Tripura", Disease: DiseaseTyphoid, Window: WindowSixMonths}
	first := TransformTrends(bundles, q)
	second := TransformTrends(bundles, q)

	assert.Equal(t, first, second)
	assert.Equal(t, before, bundles["Tripura"])

	first.Geo[0].Value = -1
	assert.NotEqual(t, first.Geo[0].Value, bundles["Tripura"].Geo[0].Value)
}

func TestTransformTrendsAssamCholeraSixMonths(t *testing.T) {
	bundles := fixtures.RegionBundles()
	base := bundles["Assam"]

	got := TransformTrends(bundles, TrendQuery{Region: "Assam", Disease: DiseaseCholera, Window: WindowSixMonths})

	require.Len(t, got.Incidence, 6)
	tail := base.Incidence[len(base.Incidence)-6:]
	for i, p := range got.Incidence {
		assert.Equal(t, tail[i].Name, p.Name)
		assert.Equal(t, math.Round(tail[i].Value*0.8), p.Value)
	}
	require.Len(t, got.Geo, len(base.Geo))
	for i, p := range got.Geo {
		assert.Equal(t, math.Round(base.Geo[i].Value*0.8), p.Value)
	}
	require.Len(t, got.Age, len(base.Age))
}

func TestTransformTrendsWindows(t *testing.T) {
	bundles := fixtures.RegionBundles()

	for region := range bundles {
		narrow := TransformTrends(bundles, TrendQuery{Region: region, Window: WindowThirtyDays})
		require.Len(t, narrow.Incidence, 2, region)
		assert.Equal(t, "Period 1", narrow.Incidence[0].Name)
		assert.Equal(t, "Period 2", narrow.Incidence[1].Name)
		assert.Equal(t, bundles[region].Incidence[6].Value, narrow.Incidence[1].Value)
		assert.Len(t, narrow.Geo, 7, "geo must ignore the window")
		assert.Len(t, narrow.Age, 7, "age must ignore the window")

		broad := TransformTrends(bundles, TrendQuery{Region: region, Window: WindowTwelveMonths})
		assert.Len(t, broad.Incidence, 7)
	}
}

func TestTransformTrendsFailsClosed(t *testing.T) {
	bundles := fixtures.RegionBundles()

	got := TransformTrends(bundles, TrendQuery{Region: "Atlantis", Disease: "Plague", Window: "Forever"})
	assert.Equal(t, bundles[fixtures.AllRegions], got)
}

func TestTransformTrendsNonNegative(t *testing.T) {
	bundles := fixtures.RegionBundles()
	opts := TrendOptions(bundles)

	for _, region := range opts.Regions {
		for _, disease := range opts.Diseases {
			for _, window := range opts.Windows {
				got := TransformTrends(bundles, TrendQuery{Region: region, Disease: disease, Window: window})
				for _, s := range []types.ChartSeries{got.Incidence, got.Geo, got.Age} {
					require.NotEmpty(t, s)
					for _, p := range s {
						assert.GreaterOrEqual(t, p.Value, 0.0)
					}
				}
			}
		}
	}
}

func TestTrendOptions(t *testing.T) {
	opts := TrendOptions(fixtures.RegionBundles())
	assert.Equal(t, fixtures.AllRegions, opts.Regions[0])
	assert.Len(t, opts.Regions, 7)
	assert.Equal(t, []string{"all", "Cholera", "Typhoid"}, opts.Diseases)
	assert.Equal(t, []string{"Last 12 Months", "Last 6 Months", "Last 30 Days"}, opts.Windows)
}
