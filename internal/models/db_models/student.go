package db_models

import (
	"gorm.io/datatypes"
)

// Gender is stored as a small integer code. Only the two values below are
// recognised; anything else is kept verbatim and counted as neither.
type Gender int

const (
	GenderMale   Gender = 1
	GenderFemale Gender = 2
)

type Student struct {
	BaseModel
	StudentNumber string `gorm:"size:20;uniqueIndex;not null"`
	FirstName     string `gorm:"size:100"`
	MiddleName    string `gorm:"size:100"`
	LastName      string `gorm:"size:100"`
	Gender        Gender `gorm:"index"`
	Birthday      datatypes.Date

	// nil when the student has no details row
	Details *StudentDetails `gorm:"foreignKey:StudentID"`
}

type StudentDetails struct {
	BaseModel
	StudentID     uint   `gorm:"uniqueIndex;not null"`
	ContactNumber string `gorm:"size:20"`
	Street        string `gorm:"size:255"`
	ZipCode       string `gorm:"size:10"`

	ProvinceID *uint `gorm:"index"`
	Province   *Province
	TownCityID *uint `gorm:"index"`
	TownCity   *TownCity
}

// AllModels lists every table the dashboard reads, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&Province{},
		&TownCity{},
		&Student{},
		&StudentDetails{},
	}
}

func (StudentDetails) TableName() string {
	return "student_details"
}
