package db_models

// BaseModel carries the integer surrogate key every records table uses.
type BaseModel struct {
	ID uint `gorm:"primaryKey;autoIncrement"`
}
