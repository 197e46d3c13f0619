package response_models

import (
	"time"
)

// NotAvailable fills every detail-derived field of a student whose details
// record (or one of its references) is missing.
const NotAvailable = "N/A"

// UnknownProvince names the group of details rows without a province.
const UnknownProvince = "Unknown"

type StudentRow struct {
	StudentNumber string    `json:"student_number"`
	FirstName     string    `json:"first_name"`
	MiddleName    string    `json:"middle_name"`
	LastName      string    `json:"last_name"`
	Gender        int       `json:"gender"`
	Birthday      time.Time `json:"birthday"`

	ContactNumber string `json:"contact_number"`
	Street        string `json:"street"`
	TownCity      string `json:"town_city"`
	Province      string `json:"province"`
	ZipCode       string `json:"zip_code"`
}

type ProvinceRow struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	StudentCount  int64   `json:"student_count"`
	ChangePercent float64 `json:"change_percent"` // display placeholder
}

type Metrics struct {
	TotalStudents int64 `json:"total_students"`
	MaleCount     int64 `json:"male_count"`
	FemaleCount   int64 `json:"female_count"`
	ProvinceCount int   `json:"province_count"`
}

type PendingDocument struct {
	Name         string `json:"name"`
	Note         string `json:"note"`
	PendingCount int    `json:"pending_count"`
	IconURL      string `json:"icon_url"`
}

type DashboardReport struct {
	Students         []StudentRow      `json:"students"`
	ProvincesData    []ProvinceRow     `json:"provinces_data"`
	TotalStudents    int64             `json:"total_students"`
	TotalMale        int64             `json:"total_male"`
	TotalFemale      int64             `json:"total_female"`
	Metrics          Metrics           `json:"metrics"`
	PendingDocuments []PendingDocument `json:"pending_documents"`
}

// FullName joins the non-empty name parts with single spaces.
func (s StudentRow) FullName() string {
	name := s.FirstName
	for _, part := range []string{s.MiddleName, s.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}
