package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mymaterio/internal/api/controllers"
	resp "mymaterio/internal/models/response_models"
	"mymaterio/pkg/utils"
)

type fakeDashboardService struct {
	report *resp.DashboardReport
	err    error
	calls  int
}

func (f *fakeDashboardService) BuildDashboard(context.Context) (*resp.DashboardReport, error) {
	f.calls++
	return f.report, f.err
}

func sampleReport() *resp.DashboardReport {
	return &resp.DashboardReport{
		Students: []resp.StudentRow{
			{
				StudentNumber: "2024-0001", FirstName: "Maria", LastName: "Reyes", Gender: 2,
				Birthday: time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC),
				ContactNumber: "0917", Street: "12 Osmena Blvd", TownCity: "Cebu City", Province: "Cebu", ZipCode: "6000",
			},
			{
				StudentNumber: "2024-0002", FirstName: "Jose", LastName: "Garcia", Gender: 1,
				ContactNumber: "N/A", Street: "N/A", TownCity: "N/A", Province: "N/A", ZipCode: "N/A",
			},
		},
		ProvincesData: []resp.ProvinceRow{
			{Code: "N/A", Name: "Cebu", StudentCount: 1, ChangePercent: 5.2},
			{Code: "N/A", Name: "Unknown", StudentCount: 3, ChangePercent: 5.2},
		},
		TotalStudents: 14,
		TotalMale:     6,
		TotalFemale:   7,
		Metrics:       resp.Metrics{TotalStudents: 14, MaleCount: 6, FemaleCount: 7, ProvinceCount: 2},
		PendingDocuments: []resp.PendingDocument{
			{Name: "Drug Test", Note: "Students who have not submitted drug tests", PendingCount: 10, IconURL: "/static/img/icons/documents/drug-test.png"},
		},
	}
}

const testTemplate = `{{ define "dashboard/index.html" }}` +
	`total={{ .total_students }};male={{ .total_male }};female={{ .total_female }};provinces={{ .metrics.ProvinceCount }};` +
	`{{ range .students }}[{{ .StudentNumber }}|{{ .Province }}]{{ end }}` +
	`{{ range .pending_documents }}({{ .Name }}){{ end }}{{ end }}`

func newRouter(svc *fakeDashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplate)))

	c := controllers.NewDashboardController(svc)
	r.GET("/dashboard", c.ShowDashboard)
	r.GET("/api/dashboard", c.GetDashboard)
	r.GET("/dashboard/export", c.ExportDashboard)
	return r
}

func do(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestShowDashboardRendersTemplate(t *testing.T) {
	svc := &fakeDashboardService{report: sampleReport()}

	w := do(newRouter(svc), "/dashboard")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "total=14;male=6;female=7;provinces=2;")
	assert.Contains(t, body, "[2024-0001|Cebu][2024-0002|N/A]")
	assert.Contains(t, body, "(Drug Test)")
	assert.Equal(t, 1, svc.calls)
}

func TestShowDashboardStoreFailure(t *testing.T) {
	svc := &fakeDashboardService{err: errors.New("db down")}

	w := do(newRouter(svc), "/dashboard")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "total=")
}

func TestGetDashboardJSON(t *testing.T) {
	svc := &fakeDashboardService{report: sampleReport()}

	w := do(newRouter(svc), "/api/dashboard")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string                 `json:"status"`
		Code   int                    `json:"code"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, http.StatusOK, body.Code)

	for _, key := range []string{"students", "provinces_data", "total_students", "total_male", "total_female", "metrics", "pending_documents"} {
		assert.Contains(t, body.Data, key)
	}
	assert.EqualValues(t, 14, body.Data["total_students"])

	students := body.Data["students"].([]interface{})
	second := students[1].(map[string]interface{})
	assert.Equal(t, "N/A", second["contact_number"])
	assert.Equal(t, "N/A", second["zip_code"])

	metrics := body.Data["metrics"].(map[string]interface{})
	assert.EqualValues(t, 2, metrics["province_count"])
	assert.EqualValues(t, 6, metrics["male_count"])
}

func TestGetDashboardDatabaseError(t *testing.T) {
	svc := &fakeDashboardService{err: errors.Join(utils.ErrDatabaseError, errors.New("timeout"))}

	w := do(newRouter(svc), "/api/dashboard")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, w.Body.String(), "timeout")
}

func TestExportDashboardWorkbook(t *testing.T) {
	svc := &fakeDashboardService{report: sampleReport()}

	w := do(newRouter(svc), "/dashboard/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Regexp(t, `attachment; filename=dashboard_\d{8}_\d{6}\.xlsx`, w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{controllers.SheetStudents, controllers.SheetProvinces, controllers.SheetSummary}, f.GetSheetList())

	students, err := f.GetRows(controllers.SheetStudents)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "Student Number", students[0][0])
	assert.Equal(t, "2024-0001", students[1][0])
	assert.Equal(t, "2005-03-14", students[1][5])
	assert.Equal(t, "N/A", students[2][6])

	provinces, err := f.GetRows(controllers.SheetProvinces)
	require.NoError(t, err)
	require.Len(t, provinces, 3)
	assert.Equal(t, []string{"N/A", "Unknown", "3", "5.2"}, provinces[2])

	total, err := f.GetCellValue(controllers.SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "14", total)
}

func TestExportDashboardDatabaseError(t *testing.T) {
	svc := &fakeDashboardService{err: errors.Join(utils.ErrDatabaseError, errors.New("boom"))}

	w := do(newRouter(svc), "/dashboard/export")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestTemplateContextKeys(t *testing.T) {
	ctx := controllers.TemplateContext(sampleReport())

	assert.Len(t, ctx, 7)
	assert.EqualValues(t, 14, ctx["total_students"])
	assert.Len(t, ctx["students"], 2)
	assert.Len(t, ctx["provinces_data"], 2)
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ok := gin.New()
	ok.GET("/healthz", controllers.NewHealthController(func(context.Context) error { return nil }).Healthz)
	assert.Equal(t, http.StatusOK, do(ok, "/healthz").Code)

	down := gin.New()
	down.GET("/healthz", controllers.NewHealthController(func(context.Context) error { return errors.New("refused") }).Healthz)
	w := do(down, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "refused")
}
