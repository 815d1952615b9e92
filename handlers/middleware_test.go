package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-healthwatch/db"
	"go-healthwatch/locale"
)

func TestRequestIDIsEchoedOrGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(requestIDHeader), 36)
}

func TestNavigationGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prefs := db.NewPreferences(db.NewMemoryBackend())
	h := &Handlers{Preferences: prefs, Translator: locale.MustNewTranslator()}

	r := gin.New()
	r.Use(h.NavigationGate())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/login", ok)
	r.GET("/dashboard", ok)
	r.POST("/api/auth/login", ok)
	r.GET("/api/notifications", ok)
	r.GET("/assets/app.js", ok)

	cases := []struct {
		path     string
		method   string
		auth     bool
		code     int
		location string
	}{
		{"/dashboard", http.MethodGet, false, http.StatusFound, "/login"},
		{"/login", http.MethodGet, false, http.StatusOK, ""},
		{"/api/auth/login", http.MethodPost, false, http.StatusOK, ""},
		{"/api/notifications", http.MethodGet, false, http.StatusUnauthorized, ""},
		{"/assets/app.js", http.MethodGet, false, http.StatusOK, ""},
		{"/dashboard", http.MethodGet, true, http.StatusOK, ""},
		{"/login", http.MethodGet, true, http.StatusFound, "/dashboard"},
		{"/api/notifications", http.MethodGet, true, http.StatusOK, ""},
	}

	for _, tc := range cases {
		require.NoError(t, prefs.SetAuthenticated(context.Background(), tc.auth))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.code, w.Code, "%s auth=%v", tc.path, tc.auth)
		assert.Equal(t, tc.location, w.Header().Get("Location"), "%s auth=%v", tc.path, tc.auth)
	}
}

func TestPrefersDark(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for header, want := range map[string]bool{
		`"dark"`: true,
		"dark":   true,
		"light":  false,
		"":       false,
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set(colorSchemeHeader, header)
		assert.Equal(t, want, prefersDark(c), header)
	}
}
