package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mymaterio/internal/models/response_models"
	"mymaterio/internal/services"
	"mymaterio/pkg/logger"
	"mymaterio/pkg/utils"
)

// DashboardTemplate is the template name ShowDashboard renders.
const DashboardTemplate = "dashboard/index.html"

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// ShowDashboard renders the student records dashboard page.
func (p *DashboardController) ShowDashboard(c *gin.Context) {
	report, err := p.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("Failed to build dashboard")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, DashboardTemplate, TemplateContext(report))
}

// GetDashboard godoc
// @Summary Get dashboard report
// @Description Fetch the first students with their details, totals, gender counts, province counts and pending documents
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	report, err := p.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}

// ExportDashboard godoc
// @Summary Export dashboard report
// @Description Download the dashboard report as an xlsx workbook
// @Tags Dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Failure 500 {object} utils.APIResponse
// @Router /dashboard/export [get]
func (p *DashboardController) ExportDashboard(c *gin.Context) {
	report, err := p.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	f, err := BuildWorkbook(report)
	if err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %w", utils.ErrExportFailed, err))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %w", utils.ErrExportFailed, err))
		return
	}

	fileName := fmt.Sprintf("dashboard_%s.xlsx", time.Now().Format(utils.ExportTimestamp))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// TemplateContext shapes a report into the mapping the dashboard template
// reads. The per-row values stay typed; only the top level is a map.
func TemplateContext(report *response_models.DashboardReport) gin.H {
	return gin.H{
		"students":          report.Students,
		"provinces_data":    report.ProvincesData,
		"total_students":    report.TotalStudents,
		"total_male":        report.TotalMale,
		"total_female":      report.TotalFemale,
		"metrics":           report.Metrics,
		"pending_documents": report.PendingDocuments,
	}
}
