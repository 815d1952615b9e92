package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-healthwatch/fixtures"
	"go-healthwatch/processor"
)

func (h *Handlers) DiseaseTrends(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	t := func(key string) string { return h.Translator.T(state.Language, key) }

	var q processor.TrendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q = q.Normalize(h.Bundles)

	c.JSON(http.StatusOK, gin.H{
		"title":   t("disease_trends_title_long"),
		"query":   q,
		"options": processor.TrendOptions(h.Bundles),
		"charts": gin.H{
			"titles": gin.H{
				"incidence": t("chart_title_incidence"),
				"geo":       t("chart_title_geo"),
				"age":       t("chart_title_age"),
			},
			"data": processor.TransformTrends(h.Bundles, q),
		},
	})
}

// waterQualityPayload is what the water quality chart and its AI summary see.
func waterQualityPayload() gin.H {
	return gin.H{
		"current":      fixtures.CurrentWaterReading(),
		"historicalPh": fixtures.PHHistory(),
	}
}

func (h *Handlers) WaterQuality(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	t := func(key string) string { return h.Translator.T(state.Language, key) }

	c.JSON(http.StatusOK, gin.H{
		"title":        t("water_quality_title_long"),
		"currentTitle": t("current_water_quality"),
		"chartTitle":   t("ph_over_time"),
		"data":         waterQualityPayload(),
	})
}
