package services

import (
	"context"
	"fmt"

	dbm "mymaterio/internal/models/db_models"
	resp "mymaterio/internal/models/response_models"
	"mymaterio/internal/repositories"
	"mymaterio/pkg/utils"
)

const (
	// DisplayedStudents caps the student table on the dashboard page.
	DisplayedStudents = 10

	provinceChangePercent = 5.2
)

type DashboardService interface {
	BuildDashboard(ctx context.Context) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) BuildDashboard(ctx context.Context) (*resp.DashboardReport, error) {
	// ---------- Students ----------
	students, err := s.repo.ListStudentsWithDetails(ctx, DisplayedStudents)
	if err != nil {
		return nil, dbError(err)
	}
	if len(students) > DisplayedStudents {
		students = students[:DisplayedStudents]
	}
	rows := make([]resp.StudentRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, toStudentRow(st))
	}

	// ---------- Core counts ----------
	totalStudents, err := s.repo.CountStudents(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	totalMale, err := s.repo.CountStudentsByGender(ctx, dbm.GenderMale)
	if err != nil {
		return nil, dbError(err)
	}
	totalFemale, err := s.repo.CountStudentsByGender(ctx, dbm.GenderFemale)
	if err != nil {
		return nil, dbError(err)
	}

	// ---------- Provinces ----------
	groups, err := s.repo.ProvinceStudentCounts(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	provinces := make([]resp.ProvinceRow, 0, len(groups))
	for _, g := range groups {
		name := resp.UnknownProvince
		if g.ProvinceName != nil && *g.ProvinceName != "" {
			name = *g.ProvinceName
		}
		provinces = append(provinces, resp.ProvinceRow{
			Code:          resp.NotAvailable,
			Name:          name,
			StudentCount:  g.StudentCount,
			ChangePercent: provinceChangePercent,
		})
	}

	report := &resp.DashboardReport{
		Students:      rows,
		ProvincesData: provinces,
		TotalStudents: totalStudents,
		TotalMale:     totalMale,
		TotalFemale:   totalFemale,
		Metrics: resp.Metrics{
			TotalStudents: totalStudents,
			MaleCount:     totalMale,
			FemaleCount:   totalFemale,
			ProvinceCount: len(provinces),
		},
		PendingDocuments: PendingDocuments(),
	}

	return report, nil
}

// PendingDocuments returns a fresh copy of the document checklist shown on
// the dashboard. The counts are fixed and not derived from stored data.
func PendingDocuments() []resp.PendingDocument {
	return []resp.PendingDocument{
		{Name: "Drug Test", Note: "Students who have not submitted drug tests", PendingCount: 10, IconURL: "/static/img/icons/documents/drug-test.png"},
		{Name: "Clearance", Note: "Clearance forms yet to be submitted", PendingCount: 15, IconURL: "/static/img/icons/documents/clearance.png"},
		{Name: "Orientation Slip", Note: "Pending orientation slips", PendingCount: 8, IconURL: "/static/img/icons/documents/orientation.png"},
		{Name: "Copy of Grades", Note: "Students missing grade copies", PendingCount: 12, IconURL: "/static/img/icons/documents/grades.png"},
		{Name: "Enrollment Form", Note: "Enrollment forms not yet submitted", PendingCount: 5, IconURL: "/static/img/icons/documents/enrollment.png"},
	}
}

func toStudentRow(st dbm.Student) resp.StudentRow {
	row := resp.StudentRow{
		StudentNumber: st.StudentNumber,
		FirstName:     st.FirstName,
		MiddleName:    st.MiddleName,
		LastName:      st.LastName,
		Gender:        int(st.Gender),
		Birthday:      utils.DateOf(st.Birthday),
		ContactNumber: resp.NotAvailable,
		Street:        resp.NotAvailable,
		TownCity:      resp.NotAvailable,
		Province:      resp.NotAvailable,
		ZipCode:       resp.NotAvailable,
	}

	d := st.Details
	if d == nil {
		return row
	}
	row.ContactNumber = d.ContactNumber
	row.Street = d.Street
	row.ZipCode = d.ZipCode
	if d.TownCity != nil {
		row.TownCity = d.TownCity.Name
	}
	if d.Province != nil {
		row.Province = d.Province.Name
	}
	return row
}

func dbError(err error) error {
	return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
}
