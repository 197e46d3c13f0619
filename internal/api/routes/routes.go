package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"mymaterio/internal/api/controllers"
	dbm "mymaterio/internal/models/db_models"
	"mymaterio/pkg/utils"
)

// TemplateFuncs are available to every page template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"date":        utils.FormatDate,
		"genderLabel": GenderLabel,
	}
}

func GenderLabel(code int) string {
	switch dbm.Gender(code) {
	case dbm.GenderMale:
		return "Male"
	case dbm.GenderFemale:
		return "Female"
	default:
		return "Unspecified"
	}
}

func RegisterRoutes(r *gin.Engine,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.Healthz)

	r.GET("/", dashboardController.ShowDashboard)
	dashboardGroup := r.Group("/dashboard")
	dashboardGroup.GET("", dashboardController.ShowDashboard)
	dashboardGroup.GET("/export", dashboardController.ExportDashboard)

	apiGroup := r.Group("/api")
	apiGroup.GET("/dashboard", dashboardController.GetDashboard)
}
