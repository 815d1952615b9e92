package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-healthwatch/processor"
)

type reportQuery struct {
	Region string `form:"region" json:"region"`
	Status string `form:"status" json:"status"`
}

func (h *Handlers) CommunityReports(c *gin.Context) {
	var q reportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reports := processor.FilterReports(h.Reports, q.Region, q.Status)
	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"count":   len(reports),
		"options": processor.ReportOptions(h.Reports),
	})
}

func (h *Handlers) ReportDetails(c *gin.Context) {
	report, err := processor.FindReport(h.Reports, c.Param("id"))
	if errors.Is(err, processor.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportReports streams the filtered reports as a CSV download.
func (h *Handlers) ExportReports(c *gin.Context) {
	var q reportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reports := processor.FilterReports(h.Reports, q.Region, q.Status)
	log.Infof("Exporting %d community reports (region=%q status=%q)", len(reports), q.Region, q.Status)

	var buf bytes.Buffer
	if err := processor.WriteReportsCSV(&buf, reports); err != nil {
		log.WithError(err).Error("Error writing reports CSV")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to format report data",
			"details": err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, processor.ReportsCSVFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
