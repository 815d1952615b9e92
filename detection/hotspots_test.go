package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-healthwatch/fixtures"
	"go-healthwatch/types"
)

func TestHaversineDistance(t *testing.T) {
	guwahati := types.LatLng{Lat: 26.1445, Lng: 91.7362}
	shillong := types.LatLng{Lat: 25.5788, Lng: 91.8933}

	assert.InDelta(t, 65, haversineDistance(guwahati, shillong), 2)
	assert.Zero(t, haversineDistance(guwahati, guwahati))
}

func TestDetectHotspotsOnFixture(t *testing.T) {
	hotspots := DetectHotspots(fixtures.MapLocations())
	require.Len(t, hotspots, 3)

	assert.Equal(t, []string{"Guwahati, Assam", "Shillong, Meghalaya"}, hotspots[0].Locations)
	assert.Equal(t, []string{"Agartala, Tripura"}, hotspots[1].Locations)
	assert.Equal(t, []string{"Imphal, Manipur", "Kohima, Nagaland"}, hotspots[2].Locations)

	for _, h := range hotspots {
		assert.Equal(t, types.RiskMedium, h.Severity, h.Locations)
		assert.Equal(t, 1, h.Outbreaks)
		assert.NotEmpty(t, h.ID)
	}
	assert.Equal(t, hotspots, DetectHotspots(fixtures.MapLocations()))
}

func TestDetectHotspotsSeverity(t *testing.T) {
	at := func(lat float64) types.LatLng { return types.LatLng{Lat: lat, Lng: 92} }
	locations := []types.MapLocation{
		{Name: "a", Coordinates: at(25.0), Outbreaks: 2, Risk: types.RiskHigh},
		{Name: "b", Coordinates: at(25.5), Risk: types.RiskLow},
		{Name: "c", Coordinates: at(26.0), Risk: types.RiskLow},
		{Name: "far", Coordinates: at(30.0), Risk: types.RiskHigh},
		{Name: "quiet", Coordinates: at(35.0), Risk: types.RiskMedium},
	}

	hotspots := DetectHotspots(locations)
	require.Len(t, hotspots, 2)
	assert.Equal(t, []string{"a", "b", "c"}, hotspots[0].Locations)
	assert.Equal(t, types.RiskHigh, hotspots[0].Severity)
	assert.InDelta(t, 25.5, hotspots[0].Center.Lat, 1e-9)
	assert.Equal(t, []string{"far"}, hotspots[1].Locations)
	assert.Equal(t, types.RiskLow, hotspots[1].Severity)
}

func TestDetectHotspotsEmpty(t *testing.T) {
	assert.Empty(t, DetectHotspots(nil))
	assert.NotNil(t, DetectHotspots(nil))
}
