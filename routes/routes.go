package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-healthwatch/handlers"
)

func SetupRouter(h *handlers.Handlers, clientURL string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestID())
	r.Use(handlers.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID", "Sec-CH-Prefers-Color-Scheme"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(h.NavigationGate())

	r.GET("/healthz", h.Healthz)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	// pages
	r.GET("/login", h.LoginPage)
	r.GET("/dashboard", h.DashboardPage)
	r.GET("/disease-trends", h.DiseaseTrends)
	r.GET("/water-quality", h.WaterQuality)
	r.GET("/community-reports", h.CommunityReports)
	r.GET("/community-reports/export", h.ExportReports)
	r.GET("/community-reports/:id", h.ReportDetails)
	r.GET("/resources", h.Resources)
	r.GET("/settings", h.Settings)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/signup", h.Signup)
		auth.POST("/logout", h.Logout)

		prefs := api.Group("/preferences")
		prefs.PUT("", h.UpdatePreferences)
		prefs.POST("/theme/toggle", h.ToggleTheme)
		prefs.POST("/language/toggle", h.ToggleLanguage)

		dash := api.Group("/dashboard")
		dash.POST("/mount", h.MountDashboard)
		dash.DELETE("/mount", h.UnmountDashboard)

		api.GET("/notifications", h.Notifications)
		api.DELETE("/notifications/:id", h.DismissNotification)

		ai := api.Group("/ai")
		ai.POST("/reports", h.SummarizeReports)
		ai.POST("/chart", h.SummarizeChart)
		ai.POST("/refine", h.Refine)
	}

	r.NoRoute(h.NoRoute)

	return r
}
