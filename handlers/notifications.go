package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"go-healthwatch/types"
)

func (h *Handlers) Notifications(c *gin.Context) {
	state, ok := h.state(c)
	if !ok {
		return
	}

	now := h.now()
	alerts := lo.Map(h.Queue.Entries(), func(e types.AlertEntry, _ int) types.LocalizedAlert {
		return types.LocalizedAlert{
			ID:      e.ID,
			Title:   h.Translator.T(state.Language, e.TitleKey),
			Message: h.Translator.T(state.Language, e.MessageKey),
			Link:    e.Link,
			Visible: now.Before(e.ExpiresAt),
		}
	})

	c.JSON(http.StatusOK, gin.H{
		"enabled":       h.Queue.Enabled(),
		"dismiss":       h.Translator.T(state.Language, "dismiss"),
		"notifications": alerts,
	})
}

// DismissNotification removes the notification; unknown ids are ignored.
func (h *Handlers) DismissNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if !h.Queue.Dismiss(id) {
		log.Debugf("Notification %d already gone", id)
	}
	c.Status(http.StatusNoContent)
}
