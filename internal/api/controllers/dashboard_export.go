package controllers

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"mymaterio/internal/models/response_models"
	"mymaterio/pkg/utils"
)

const (
	SheetStudents  = "Students"
	SheetProvinces = "Provinces"
	SheetSummary   = "Summary"
)

var (
	studentHeaders = []interface{}{
		"Student Number", "First Name", "Middle Name", "Last Name", "Gender", "Birthday",
		"Contact Number", "Street", "Town/City", "Province", "Zip Code",
	}
	provinceHeaders = []interface{}{"Code", "Province", "Students", "Change %"}
)

// BuildWorkbook lays the report out over three sheets. The caller owns the
// returned file and must Close it.
func BuildWorkbook(report *response_models.DashboardReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetStudents); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetProvinces, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := writeStudents(f, report.Students); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeProvinces(f, report.ProvincesData); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, report); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeStudents(f *excelize.File, students []response_models.StudentRow) error {
	if err := setRow(f, SheetStudents, 1, studentHeaders); err != nil {
		return err
	}
	for i, s := range students {
		row := []interface{}{
			s.StudentNumber, s.FirstName, s.MiddleName, s.LastName, s.Gender, utils.FormatDate(s.Birthday),
			s.ContactNumber, s.Street, s.TownCity, s.Province, s.ZipCode,
		}
		if err := setRow(f, SheetStudents, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeProvinces(f *excelize.File, provinces []response_models.ProvinceRow) error {
	if err := setRow(f, SheetProvinces, 1, provinceHeaders); err != nil {
		return err
	}
	for i, p := range provinces {
		if err := setRow(f, SheetProvinces, i+2, []interface{}{p.Code, p.Name, p.StudentCount, p.ChangePercent}); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, report *response_models.DashboardReport) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Students", report.Metrics.TotalStudents},
		{"Male", report.Metrics.MaleCount},
		{"Female", report.Metrics.FemaleCount},
		{"Provinces", report.Metrics.ProvinceCount},
		{},
		{"Pending Document", "Note", "Pending"},
	}
	for _, d := range report.PendingDocuments {
		rows = append(rows, []interface{}{d.Name, d.Note, d.PendingCount})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := setRow(f, SheetSummary, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
