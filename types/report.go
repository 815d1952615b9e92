package types

type ReportStatus string

const (
	StatusSubmitted ReportStatus = "Submitted"
	StatusReviewed  ReportStatus = "Reviewed"
	StatusPending   ReportStatus = "Pending"
)

// ReportStatuses lists every status a report can carry, in display order.
var ReportStatuses = []ReportStatus{StatusSubmitted, StatusReviewed, StatusPending}

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusReviewed, StatusPending:
		return true
	}
	return false
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c LatLng) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Report is a community health worker submission.
type Report struct {
	ID          string       `json:"id"`
	Location    string       `json:"location"`
	Coordinates LatLng       `json:"coordinates"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Status      ReportStatus `json:"status"`
	SubmittedBy string       `json:"submittedBy"`
	Details     string       `json:"details"`
	Age         int          `json:"age"`
	Gender      Gender       `json:"gender"`
	Symptoms    []string     `json:"symptoms"`
}

// Valid reports whether r satisfies the fixture invariants.
func (r Report) Valid() bool {
	return r.ID != "" && r.Status.Valid() && r.Coordinates.Valid() && r.Age > 0
}

// Clone returns a copy of r that shares no memory with it.
func (r Report) Clone() Report {
	out := r
	out.Symptoms = append([]string(nil), r.Symptoms...)
	return out
}
