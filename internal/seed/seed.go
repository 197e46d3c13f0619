package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mymaterio/internal/infra"
	dbm "mymaterio/internal/models/db_models"
	"mymaterio/pkg/logger"
	"mymaterio/pkg/utils"
)

// CreateDemoData inserts a small records dataset when the students table is
// empty. It reports whether anything was written.
//
// The dataset deliberately covers the dashboard's edge cases: a student with
// no details row, a details row with no province, and a gender code outside
// the male/female pair.
func CreateDemoData(ctx context.Context, db *gorm.DB) (bool, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&dbm.Student{}).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("count existing students: %w", err)
	}
	if existing > 0 {
		logger.Info().Int64("students", existing).Msg("Seed skipped, students table is not empty")
		return false, nil
	}

	tx := infra.StartTransaction(db.WithContext(ctx))
	if tx.Error != nil {
		return false, fmt.Errorf("begin seed transaction: %w", tx.Error)
	}
	if err := infra.ReleaseTransaction(tx, insertDemoData(tx)); err != nil {
		return false, err
	}

	logger.Info().Msg("Demo records inserted")
	return true, nil
}

func insertDemoData(tx *gorm.DB) error {
	cebu := &dbm.Province{Name: "Cebu"}
	bohol := &dbm.Province{Name: "Bohol"}
	if err := tx.Create([]*dbm.Province{cebu, bohol}).Error; err != nil {
		return fmt.Errorf("create provinces: %w", err)
	}

	cebuCity := &dbm.TownCity{Name: "Cebu City", ProvinceID: &cebu.ID}
	mandaue := &dbm.TownCity{Name: "Mandaue", ProvinceID: &cebu.ID}
	tagbilaran := &dbm.TownCity{Name: "Tagbilaran", ProvinceID: &bohol.ID}
	if err := tx.Create([]*dbm.TownCity{cebuCity, mandaue, tagbilaran}).Error; err != nil {
		return fmt.Errorf("create towns: %w", err)
	}

	students := []*dbm.Student{
		{StudentNumber: "2024-0001", FirstName: "Maria", MiddleName: "Santos", LastName: "Reyes", Gender: dbm.GenderFemale, Birthday: utils.MustDate("2005-03-14")},
		{StudentNumber: "2024-0002", FirstName: "Jose", MiddleName: "Cruz", LastName: "Garcia", Gender: dbm.GenderMale, Birthday: utils.MustDate("2004-11-02")},
		{StudentNumber: "2024-0003", FirstName: "Ana", LastName: "Lim", Gender: dbm.GenderFemale, Birthday: utils.MustDate("2005-07-21")},
		{StudentNumber: "2024-0004", FirstName: "Paolo", MiddleName: "Dizon", LastName: "Tan", Gender: dbm.GenderMale, Birthday: utils.MustDate("2003-01-30")},
		{StudentNumber: "2024-0005", FirstName: "Kim", LastName: "Villanueva", Gender: dbm.Gender(0), Birthday: utils.MustDate("2005-09-09")},
	}
	if err := tx.Create(students).Error; err != nil {
		return fmt.Errorf("create students: %w", err)
	}

	details := []*dbm.StudentDetails{
		{StudentID: students[0].ID, ContactNumber: "09171234567", Street: "12 Osmena Blvd", ZipCode: "6000", ProvinceID: &cebu.ID, TownCityID: &cebuCity.ID},
		{StudentID: students[1].ID, ContactNumber: "09181234567", Street: "4 A.S. Fortuna St", ZipCode: "6014", ProvinceID: &cebu.ID, TownCityID: &mandaue.ID},
		{StudentID: students[2].ID, ContactNumber: "09191234567", Street: "88 CPG Ave", ZipCode: "6300", ProvinceID: &bohol.ID, TownCityID: &tagbilaran.ID},
		// no province or town on file
		{StudentID: students[4].ID, ContactNumber: "09201234567", Street: "Purok 3", ZipCode: ""},
	}
	if err := tx.Create(details).Error; err != nil {
		return fmt.Errorf("create student details: %w", err)
	}

	return nil
}
