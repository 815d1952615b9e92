package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-healthwatch/cronjobs"
	"go-healthwatch/db"
	"go-healthwatch/locale"
	"go-healthwatch/summarization"
	"go-healthwatch/types"
)

var log = logrus.WithField("prefix", "gin")

const (
	preferencesKey = "preferences"
	requestIDKey   = "requestID"

	// Sec-CH-Prefers-Color-Scheme carries the browser's OS dark-mode setting.
	colorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"
)

// Handlers holds everything the HTTP surface reads or mutates. It is built
// once at startup and shared by every request.
type Handlers struct {
	Preferences *db.Preferences
	Translator  *locale.Translator
	Dashboard   *cronjobs.DashboardView
	Queue       *cronjobs.NotificationQueue
	Summarizer  *summarization.Summarizer

	Reports []types.Report
	Bundles map[string]types.RegionChartBundle

	Now func() time.Time
}

func prefersDark(c *gin.Context) bool {
	return strings.EqualFold(strings.Trim(c.GetHeader(colorSchemeHeader), `" `), "dark")
}

// state returns the preferences loaded by the navigation gate, or loads them.
func (h *Handlers) state(c *gin.Context) (types.PreferenceState, bool) {
	if v, ok := c.Get(preferencesKey); ok {
		return v.(types.PreferenceState), true
	}

	state, err := h.Preferences.Load(c.Request.Context(), prefersDark(c))
	if err != nil {
		log.WithError(err).Error("Failed to load preferences")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load preferences",
		})
		return state, false
	}
	c.Set(preferencesKey, state)
	return state, true
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handlers) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
