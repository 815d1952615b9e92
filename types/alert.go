package types

import "time"

// AlertEntry is a transient notification held by the notification queue.
// Title and message are i18n keys, localized when the queue is read.
// ID is advisory: two entries created in the same millisecond share it.
type AlertEntry struct {
	ID         int64     `json:"id"`
	TitleKey   string    `json:"titleKey"`
	MessageKey string    `json:"messageKey"`
	Link       string    `json:"link"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type LocalizedAlert struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link"`
	Visible bool   `json:"visible"`
}

// Metrics are the four live counters on the dashboard.
type Metrics struct {
	ActiveOutbreaks int `json:"activeOutbreaks"`
	CasesToday      int `json:"casesToday"`
	AtRiskWater     int `json:"atRiskWater"`
	AshaReports     int `json:"ashaReports"`
}
