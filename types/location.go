package types

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// RiskColor is the marker colour a map renderer should use for the level.
func (r RiskLevel) RiskColor() string {
	switch r {
	case RiskHigh:
		return "#ef4444"
	case RiskMedium:
		return "#f97316"
	default:
		return "#22c55e"
	}
}

// MapLocation is a geocoded risk marker. Name is unique within a fixture.
type MapLocation struct {
	Name           string    `json:"name"`
	Coordinates    LatLng    `json:"coordinates"`
	Outbreaks      int       `json:"outbreaks"`
	PendingReports int       `json:"pendingReports"`
	Risk           RiskLevel `json:"risk"`
}

type WaterReading struct {
	PH        float64 `json:"ph"`
	Turbidity string  `json:"turbidity"`
	Bacterial string  `json:"bacterial"`
}

// Hotspot is a cluster of nearby map locations around at least one
// high-risk location.
type Hotspot struct {
	ID             string    `json:"id"`
	Center         LatLng    `json:"center"`
	Locations      []string  `json:"locations"`
	Outbreaks      int       `json:"outbreaks"`
	PendingReports int       `json:"pendingReports"`
	Severity       RiskLevel `json:"severity"`
}
