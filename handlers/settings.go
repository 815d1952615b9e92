package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"go-healthwatch/fixtures"
	"go-healthwatch/types"
)

type resourceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type resourceCategory struct {
	Category string         `json:"category"`
	Items    []resourceItem `json:"items"`
}

func (h *Handlers) Resources(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	t := func(key string) string { return h.Translator.T(state.Language, key) }

	categories := lo.Map(fixtures.Resources(), func(cat fixtures.ResourceCategory, _ int) resourceCategory {
		return resourceCategory{
			Category: t(cat.CategoryKey),
			Items: lo.Map(cat.Items, func(item fixtures.ResourceItem, _ int) resourceItem {
				return resourceItem{
					Title:       t(item.TitleKey),
					Description: t(item.DescriptionKey),
					Link:        item.Link,
				}
			}),
		}
	})
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handlers) Settings(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}
	t := func(key string) string { return h.Translator.T(state.Language, key) }

	status := t("api_key_status_disabled")
	if h.Summarizer.Enabled() {
		status = t("api_key_status_enabled")
	}

	c.JSON(http.StatusOK, gin.H{
		"preferences":  state,
		"apiKeyStatus": status,
		"user": gin.H{
			"name":       t("user_name"),
			"role":       t("user_role"),
			"department": "National Health Mission, Assam",
			"email":      "anjali.rao@nhm-gov.in",
			"phone":      "+91-9876543210",
		},
		"recentActivity": []gin.H{
			{"text": t("activity_logged_in"), "time": "2 hours ago"},
			{"text": t("activity_viewed_reports"), "time": "Yesterday"},
			{"text": t("activity_generated_summary"), "time": "3 days ago"},
		},
	})
}

type preferenceUpdate struct {
	Theme       *string `json:"theme"`
	Language    *string `json:"language"`
	PushEnabled *bool   `json:"pushEnabled"`
}

// UpdatePreferences applies a partial update. Turning push on or off starts
// or stops the notification queue.
func (h *Handlers) UpdatePreferences(c *gin.Context) {
	var req preferenceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if req.Theme != nil {
		theme, ok := types.ParseTheme(*req.Theme)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid theme"})
			return
		}
		if err := h.Preferences.SetTheme(ctx, theme); err != nil {
			h.preferenceError(c, err)
			return
		}
	}
	if req.Language != nil {
		lang, ok := types.ParseLanguage(*req.Language)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid language"})
			return
		}
		if err := h.Preferences.SetLanguage(ctx, lang); err != nil {
			h.preferenceError(c, err)
			return
		}
	}
	if req.PushEnabled != nil {
		if err := h.Preferences.SetPushEnabled(ctx, *req.PushEnabled); err != nil {
			h.preferenceError(c, err)
			return
		}
		if *req.PushEnabled {
			h.Queue.Enable()
		} else {
			h.Queue.Disable()
		}
	}

	state, err := h.Preferences.Load(ctx, prefersDark(c))
	if err != nil {
		h.preferenceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handlers) ToggleTheme(c *gin.Context) {
	theme, err := h.Preferences.ToggleTheme(c.Request.Context(), prefersDark(c))
	if err != nil {
		h.preferenceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *Handlers) ToggleLanguage(c *gin.Context) {
	lang, err := h.Preferences.ToggleLanguage(c.Request.Context())
	if err != nil {
		h.preferenceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang})
}

func (h *Handlers) preferenceError(c *gin.Context, err error) {
	log.WithError(err).Error("Failed to save preference")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to save preference",
		"details": err.Error(),
	})
}
