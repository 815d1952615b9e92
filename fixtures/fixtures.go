// Package fixtures holds the static sample datasets that stand in for a
// real backend. Every accessor returns a fresh copy.
package fixtures

import (
	"math"

	"github.com/samber/lo"

	"go-healthwatch/types"
)

// AllRegions is the region key whose bundle is the unscaled base.
const AllRegions = "All NE"

var communityReports = []types.Report{
	{
		ID: "RPT-NE-001", Location: "Guwahati, Assam", Coordinates: types.LatLng{Lat: 26.1445, Lng: 91.7362},
		Date: "2023-08-15", Status: types.StatusSubmitted, SubmittedBy: "CHW #12",
		Details: "Patient reported high fever and severe dehydration in a remote village. Samples collected for cholera testing.",
		Age:     34, Gender: types.Male, Symptoms: []string{"High Fever", "Dehydration", "Vomiting"},
	},
	{
		ID: "RPT-NE-002", Location: "Shillong, Meghalaya", Coordinates: types.LatLng{Lat: 25.5788, Lng: 91.8933},
		Date: "2023-08-16", Status: types.StatusReviewed, SubmittedBy: "CHW #8",
		Details: "Case of Typhoid confirmed. Patient has started medication. Community awareness drive initiated.",
		Age:     25, Gender: types.Female, Symptoms: []string{"Fever", "Headache", "Stomach Pain"},
	},
	{
		ID: "RPT-NE-003", Location: "Agartala, Tripura", Coordinates: types.LatLng{Lat: 23.8315, Lng: 91.2868},
		Date: "2023-08-17", Status: types.StatusPending, SubmittedBy: "CHW #21",
		Details: "Multiple cases of jaundice reported near a river. Water source contamination suspected.",
		Age:     45, Gender: types.Male, Symptoms: []string{"Jaundice", "Fatigue"},
	},
	{
		ID: "RPT-NE-004", Location: "Itanagar, Arunachal Pradesh", Coordinates: types.LatLng{Lat: 27.0844, Lng: 93.6053},
		Date: "2023-08-18", Status: types.StatusSubmitted, SubmittedBy: "CHW #5",
		Details: "Suspected case of Dengue fever. Patient advised to take a blood test.",
		Age:     19, Gender: types.Female, Symptoms: []string{"High Fever", "Rash", "Joint Pain"},
	},
	{
		ID: "RPT-NE-005", Location: "Aizawl, Mizoram", Coordinates: types.LatLng{Lat: 23.7271, Lng: 92.7176},
		Date: "2023-08-19", Status: types.StatusReviewed, SubmittedBy: "CHW #33",
		Details: "Patient tested negative for Malaria. General viral fever. No further action needed.",
		Age:     52, Gender: types.Male, Symptoms: []string{"Fever", "Body Ache"},
	},
	{
		ID: "RPT-NE-006", Location: "Kohima, Nagaland", Coordinates: types.LatLng{Lat: 25.6751, Lng: 94.1022},
		Date: "2023-08-20", Status: types.StatusPending, SubmittedBy: "CHW #15",
		Details: "Report of contaminated water from a community well. Urgent attention required.",
		Age:     30, Gender: types.Female, Symptoms: []string{"Diarrhea"},
	},
}

var baseBundle = types.RegionChartBundle{
	Incidence: types.ChartSeries{
		{Name: "Jan", Value: 250}, {Name: "Feb", Value: 300}, {Name: "Mar", Value: 450},
		{Name: "Apr", Value: 400}, {Name: "May", Value: 650}, {Name: "Jun", Value: 800},
		{Name: "Jul", Value: 950},
	},
	Geo: types.ChartSeries{
		{Name: "Assam", Value: 1200}, {Name: "Tripura", Value: 980}, {Name: "Meghalaya", Value: 800},
		{Name: "Mizoram", Value: 750}, {Name: "Nagaland", Value: 600}, {Name: "Arunachal", Value: 550},
		{Name: "Manipur", Value: 320},
	},
	Age: types.ChartSeries{
		{Name: "0-10", Value: 400}, {Name: "11-20", Value: 600}, {Name: "21-30", Value: 900},
		{Name: "31-40", Value: 700}, {Name: "41-50", Value: 550}, {Name: "51-60", Value: 450},
		{Name: "61+", Value: 200},
	},
}

// regional scale factors for incidence, geo and age respectively
var regionFactors = map[string][3]float64{
	"Assam":             {1.2, 1.2, 1.1},
	"Tripura":           {0.9, 0.9, 0.95},
	"Meghalaya":         {0.7, 0.7, 0.8},
	"Mizoram":           {0.6, 0.6, 0.7},
	"Nagaland":          {0.5, 0.5, 0.6},
	"Arunachal Pradesh": {0.4, 0.4, 0.5},
}

var phHistory = types.ChartSeries{
	{Name: "4W Ago", Value: 7.0},
	{Name: "3W Ago", Value: 7.1},
	{Name: "2W Ago", Value: 7.05},
	{Name: "1W Ago", Value: 7.15},
	{Name: "Today", Value: 7.2},
}

var currentWater = types.WaterReading{PH: 7.2, Turbidity: "0.5 NTU", Bacterial: "Negative"}

var mapLocations = []types.MapLocation{
	{Name: "Guwahati, Assam", Coordinates: types.LatLng{Lat: 26.1445, Lng: 91.7362}, Outbreaks: 1, PendingReports: 1, Risk: types.RiskHigh},
	{Name: "Shillong, Meghalaya", Coordinates: types.LatLng{Lat: 25.5788, Lng: 91.8933}, Risk: types.RiskLow},
	{Name: "Agartala, Tripura", Coordinates: types.LatLng{Lat: 23.8315, Lng: 91.2868}, Outbreaks: 1, PendingReports: 1, Risk: types.RiskHigh},
	{Name: "Itanagar, Arunachal Pradesh", Coordinates: types.LatLng{Lat: 27.0844, Lng: 93.6053}, Risk: types.RiskMedium},
	{Name: "Aizawl, Mizoram", Coordinates: types.LatLng{Lat: 23.7271, Lng: 92.7176}, Risk: types.RiskLow},
	{Name: "Kohima, Nagaland", Coordinates: types.LatLng{Lat: 25.6751, Lng: 94.1022}, Outbreaks: 1, PendingReports: 1, Risk: types.RiskHigh},
	{Name: "Imphal, Manipur", Coordinates: types.LatLng{Lat: 24.8170, Lng: 93.9368}, Risk: types.RiskLow},
	{Name: "Gangtok, Sikkim", Coordinates: types.LatLng{Lat: 27.3389, Lng: 88.6065}, Risk: types.RiskLow},
}

// CommunityReports returns the six community reports.
func CommunityReports() []types.Report {
	return lo.Map(communityReports, func(r types.Report, _ int) types.Report { return r.Clone() })
}

// BaseBundle returns the unscaled disease bundle, which is also the "All NE" region.
func BaseBundle() types.RegionChartBundle {
	return baseBundle.Clone()
}

// IncidenceSeries is the chart shown on the dashboard graph view.
func IncidenceSeries() types.ChartSeries {
	return baseBundle.Incidence.Clone()
}

// RegionBundles returns the per-region disease bundles keyed by region name.
// Regional values are the base values scaled by fixed per-region factors.
func RegionBundles() map[string]types.RegionChartBundle {
	out := make(map[string]types.RegionChartBundle, len(regionFactors)+1)
	out[AllRegions] = BaseBundle()
	for region, f := range regionFactors {
		out[region] = types.RegionChartBundle{
			Incidence: scaled(baseBundle.Incidence, f[0]),
			Geo:       scaled(baseBundle.Geo, f[1]),
			Age:       scaled(baseBundle.Age, f[2]),
		}
	}
	return out
}

func scaled(s types.ChartSeries, factor float64) types.ChartSeries {
	return lo.Map(s, func(p types.ChartPoint, _ int) types.ChartPoint {
		return types.ChartPoint{Name: p.Name, Value: math.Round(p.Value * factor)}
	})
}

func MapLocations() []types.MapLocation {
	return append([]types.MapLocation(nil), mapLocations...)
}

func PHHistory() types.ChartSeries {
	return phHistory.Clone()
}

func CurrentWaterReading() types.WaterReading {
	return currentWater
}
