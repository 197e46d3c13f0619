package db_models

type Province struct {
	BaseModel
	Name       string      `gorm:"size:100;not null"`
	TownCities []*TownCity `gorm:"foreignKey:ProvinceID"` // Explicit foreign key
}

type TownCity struct {
	BaseModel
	Name       string `gorm:"size:100;not null"`
	ProvinceID *uint  `gorm:"index"`
	Province   *Province
}

func (TownCity) TableName() string {
	return "town_cities"
}
