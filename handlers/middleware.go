package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

var pages = map[string]bool{
	"/dashboard":         true,
	"/disease-trends":    true,
	"/water-quality":     true,
	"/community-reports": true,
	"/resources":         true,
	"/settings":          true,
	"/login":             true,
}

func isPage(path string) bool {
	return pages[path] || strings.HasPrefix(path, "/community-reports/")
}

// RequestID tags each request with the caller's X-Request-ID or a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger logs one line per request through logrus.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"latency":    time.Since(start),
			"request_id": c.GetString(requestIDKey),
		})
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		entry.Info("request")
	}
}

// NavigationGate redirects page requests by login state and rejects
// unauthenticated API calls. Unknown paths pass through to NoRoute.
func (h *Handlers) NavigationGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		api := strings.HasPrefix(path, "/api/")
		if !api && !isPage(path) {
			c.Next()
			return
		}

		state, ok := h.state(c)
		if !ok {
			return
		}

		switch {
		case strings.HasPrefix(path, "/api/auth/"):
		case api && !state.Authenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		case path == "/login" && state.Authenticated:
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		case !api && path != "/login" && !state.Authenticated:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// NoRoute sends unknown paths to the dashboard.
func (h *Handlers) NoRoute(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}
