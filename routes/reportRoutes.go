package routes

import (
	"civicsync-reporter/controllers"
	"civicsync-reporter/middlewares"

	"github.com/gin-gonic/gin"
)

// ReportLimit configures the per-user daily submission cap
type ReportLimit struct {
	Counter     middlewares.Counter
	QueuePrefix string
	Daily       int
}

// ReportRoutes sets up the report routes. Reads are public, submitting needs a session.
func ReportRoutes(r *gin.Engine, rc *controllers.ReportController, jwtSecret string, limit ReportLimit) {
	reports := r.Group("/api/reports")
	{
		reports.GET("", rc.ListReports)
		reports.GET("/paginated", rc.PaginatedReports)
		reports.GET("/options", rc.ReportOptions)
		reports.GET("/map", rc.MapView)
		reports.POST("",
			middlewares.AuthMiddleware(jwtSecret),
			middlewares.ReportRateLimiter(limit.Counter, limit.QueuePrefix, limit.Daily),
			rc.CreateReport,
		)
	}
}
