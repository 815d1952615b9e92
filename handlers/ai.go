package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-healthwatch/markdown"
	"go-healthwatch/processor"
)

const (
	chartDiseaseTrends = "disease-trends"
	chartWaterQuality  = "water-quality"
)

var refineInstructions = map[string]string{
	"shorter":  "refine_shorter",
	"detailed": "refine_detailed",
	"bullets":  "refine_bullets",
}

type chartSummaryRequest struct {
	Chart string `json:"chart" binding:"required"`
	processor.TrendQuery
}

type refineRequest struct {
	Text        string `json:"text" binding:"required"`
	Instruction string `json:"instruction" binding:"required"`
}

// aiResponse renders the generated Markdown for display. AI output is
// untrusted, so the HTML is sanitized.
func aiResponse(c *gin.Context, text string) {
	html, err := markdown.HTML(text)
	if err != nil {
		log.WithError(err).Warn("Failed to render AI output")
		html = ""
	}
	c.JSON(http.StatusOK, gin.H{
		"text":      text,
		"html":      html,
		"nodes":     markdown.Parse(text),
		"plainText": markdown.PlainText(text),
	})
}

func (h *Handlers) SummarizeReports(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}

	var req reportQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reports := processor.FilterReports(h.Reports, req.Region, req.Status)
	aiResponse(c, h.Summarizer.SummarizeReports(c.Request.Context(), reports, state.Language))
}

func (h *Handlers) SummarizeChart(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}

	var req chartSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		title   string
		payload any
	)
	switch req.Chart {
	case chartDiseaseTrends:
		title = h.Translator.T(state.Language, "disease_trends_title_long")
		payload = processor.TransformTrends(h.Bundles, req.TrendQuery)
	case chartWaterQuality:
		title = h.Translator.T(state.Language, "water_quality_title_long")
		payload = waterQualityPayload()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown chart " + req.Chart})
		return
	}

	aiResponse(c, h.Summarizer.SummarizeChart(c.Request.Context(), title, payload, state.Language))
}

func (h *Handlers) Refine(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}

	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, found := refineInstructions[req.Instruction]
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown instruction " + req.Instruction})
		return
	}

	instruction := h.Translator.T(state.Language, key)
	aiResponse(c, h.Summarizer.Refine(c.Request.Context(), req.Text, instruction, state.Language))
}
