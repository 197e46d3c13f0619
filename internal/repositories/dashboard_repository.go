package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	dbm "mymaterio/internal/models/db_models"
)

type DashboardRepository interface {
	// Student listing
	ListStudentsWithDetails(ctx context.Context, limit int) ([]dbm.Student, error)

	// KPIs / counts
	CountStudents(ctx context.Context) (int64, error)
	CountStudentsByGender(ctx context.Context, gender dbm.Gender) (int64, error)

	// Grouped counts
	ProvinceStudentCounts(ctx context.Context) ([]ProvinceCountRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------

// ProvinceCountRow is one group of student_details rows sharing a province.
// ProvinceID and ProvinceName are nil for the group without a province.
type ProvinceCountRow struct {
	ProvinceID   *uint   `gorm:"column:province_id"`
	ProvinceName *string `gorm:"column:province_name"`
	StudentCount int64   `gorm:"column:student_count"`
}

// ---------- Students ----------

// ListStudentsWithDetails returns the first limit students by primary key,
// each with its details row and the details' location references preloaded.
func (r *dashboardRepository) ListStudentsWithDetails(ctx context.Context, limit int) ([]dbm.Student, error) {
	var students []dbm.Student
	err := r.db.WithContext(ctx).
		Preload("Details").
		Preload("Details.Province").
		Preload("Details.TownCity").
		Order("students.id ASC").
		Limit(limit).
		Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// ---------- Counts ----------

func (r *dashboardRepository) CountStudents(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&dbm.Student{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}

func (r *dashboardRepository) CountStudentsByGender(ctx context.Context, gender dbm.Gender) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Student{}).
		Where("gender = ?", gender).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count students with gender %d: %w", gender, err)
	}
	return n, nil
}

// ---------- Province groups ----------

func (r *dashboardRepository) ProvinceStudentCounts(ctx context.Context) ([]ProvinceCountRow, error) {
	var rows []ProvinceCountRow
	err := r.db.WithContext(ctx).
		Table("student_details sd").
		Select(`
			p.id AS province_id,
			p.name AS province_name,
			COUNT(DISTINCT sd.student_id) AS student_count`).
		Joins("LEFT JOIN provinces p ON p.id = sd.province_id").
		Group("p.id, p.name").
		Order("student_count DESC, p.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count students per province: %w", err)
	}
	return rows, nil
}
