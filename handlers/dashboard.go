package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"go-healthwatch/detection"
	"go-healthwatch/fixtures"
	"go-healthwatch/types"
)

type metricCard struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type mapMarker struct {
	types.MapLocation
	Color string `json:"color"`
}

func (h *Handlers) DashboardPage(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	t := func(key string) string { return h.Translator.T(state.Language, key) }

	view := c.DefaultQuery("view", "map")
	if view != "graph" {
		view = "map"
	}

	h.Dashboard.Visit()
	snap := h.Dashboard.Snapshot()
	m := snap.Metrics

	resp := gin.H{
		"view": view,
		"alert": gin.H{
			"title":   t("urgent_alerts"),
			"message": t(snap.AlertKey),
			"index":   snap.AlertIndex,
		},
		"metrics": []metricCard{
			{t("active_outbreaks"), m.ActiveOutbreaks},
			{t("cases_today"), m.CasesToday},
			{t("at_risk_water"), m.AtRiskWater},
			{t("asha_reports"), m.AshaReports},
		},
		"waterQuality": gin.H{
			"title":   t("water_quality_metrics"),
			"current": fixtures.CurrentWaterReading(),
		},
		"lastUpdated": h.now().Format(time.RFC3339),
	}

	if view == "map" {
		resp["map"] = gin.H{
			"title": t("map_title"),
			"markers": lo.Map(fixtures.MapLocations(), func(l types.MapLocation, _ int) mapMarker {
				return mapMarker{MapLocation: l, Color: l.Risk.RiskColor()}
			}),
			"hotspots": detection.DetectHotspots(fixtures.MapLocations()),
		}
	} else {
		resp["graph"] = gin.H{
			"title": t("regional_trends"),
			"data":  fixtures.IncidenceSeries(),
		}
	}

	c.JSON(http.StatusOK, resp)
}

// MountDashboard restarts the alert rotation and metric drift from their
// initial state.
func (h *Handlers) MountDashboard(c *gin.Context) {
	h.Dashboard.Mount()
	snap := h.Dashboard.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"mounted":    snap.Mounted,
		"alertIndex": snap.AlertIndex,
		"metrics":    snap.Metrics,
	})
}

func (h *Handlers) UnmountDashboard(c *gin.Context) {
	h.Dashboard.Unmount()
	c.Status(http.StatusNoContent)
}
