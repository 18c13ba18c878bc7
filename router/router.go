package router

import (
	"api-waste-admin/handler"
	"api-waste-admin/middleware"
	"api-waste-admin/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// screenRoutes registers the endpoints every screen shares: list, reload,
// select/close (the dialog cycle) and the two export formats.
func screenRoutes(group *gin.RouterGroup, s interface {
	List(*gin.Context)
	Reload(*gin.Context)
	Select(*gin.Context)
	CloseDialog(*gin.Context)
	ReportPDF(*gin.Context)
	ReportXLSX(*gin.Context)
}) {
	group.GET("", s.List)
	group.POST("/reload", s.Reload)
	group.GET("/report", s.ReportPDF)
	group.GET("/report.xlsx", s.ReportXLSX)
	group.POST("/close", s.CloseDialog)
	group.GET("/:id", s.Select)
}

// SetupRouter wires every screen controller into one gin engine.
func SetupRouter(s store.DocumentStore, joinConcurrency int) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	collectors := handler.NewCollectors(s)
	collectorsGroup := router.Group("/collectors")
	screenRoutes(collectorsGroup, collectors)
	collectorsGroup.POST("", collectors.Create)
	collectorsGroup.DELETE("/:id", collectors.Delete)

	inspectors := handler.NewInspectors(s)
	inspectorsGroup := router.Group("/inspectors")
	screenRoutes(inspectorsGroup, inspectors)
	inspectorsGroup.POST("", inspectors.Create)
	inspectorsGroup.DELETE("/:id", inspectors.Delete)

	pickups := handler.NewPickups(s)
	pickupsGroup := router.Group("/pickups")
	screenRoutes(pickupsGroup, pickups)
	pickupsGroup.PATCH("/:id", pickups.UpdateStatus)

	reports := handler.NewServiceReports(s)
	reportsGroup := router.Group("/reports")
	screenRoutes(reportsGroup, reports)
	reportsGroup.PATCH("/:id", reports.UpdateResolved)

	users := handler.NewUsers(s)
	screenRoutes(router.Group("/users"), users)

	feedbacks := handler.NewFeedbacks(s, joinConcurrency)
	screenRoutes(router.Group("/feedbacks"), feedbacks)

	incentives := handler.NewIncentives(s, joinConcurrency)
	incentivesGroup := router.Group("/incentives")
	screenRoutes(incentivesGroup, incentives)
	incentivesGroup.PATCH("/:id", incentives.UpdateClarified)

	return router
}
