package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studentska/contexts/academics/exam-enrollment-service/domain/entities"
	domainerrors "studentska/contexts/academics/exam-enrollment-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, enrollment entities.Enrollment) error {
	row := enrollmentModelFromEntity(enrollment)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}

func (r *Repository) DeleteOwned(ctx context.Context, enrollmentID string, studentID string) error {
	result := r.db.WithContext(ctx).
		Where("enrollment_id = ? AND student_id = ?", enrollmentID, studentID).
		Delete(&enrollmentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEnrollmentNotFound
	}
	return nil
}

func (r *Repository) DeleteByStudent(ctx context.Context, studentID string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Delete(&enrollmentModel{}).
		Error
}

func (r *Repository) DeleteByCourse(ctx context.Context, courseID string) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&enrollmentModel{}).
		Error
}

func (r *Repository) ListByStudent(ctx context.Context, studentID string) ([]entities.Enrollment, error) {
	var rows []enrollmentModel
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("enrolled_at ASC, enrollment_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Enrollment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ExistsPair(ctx context.Context, studentID string, courseID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&enrollmentModel{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Migrate creates or updates the exam enrollments schema, including the
// composite unique index backing the one-enrollment-per-pair rule.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&enrollmentModel{})
}

type enrollmentModel struct {
	EnrollmentID string    `gorm:"column:enrollment_id;primaryKey"`
	StudentID    string    `gorm:"column:student_id;uniqueIndex:exam_enrollments_pair_unique"`
	CourseID     string    `gorm:"column:course_id;uniqueIndex:exam_enrollments_pair_unique"`
	EnrolledAt   time.Time `gorm:"column:enrolled_at"`
	Grade        *int      `gorm:"column:grade"`
}

func (enrollmentModel) TableName() string {
	return "exam_enrollments"
}

func (m enrollmentModel) toEntity() entities.Enrollment {
	return entities.Enrollment{
		ID:         m.EnrollmentID,
		StudentID:  m.StudentID,
		CourseID:   m.CourseID,
		EnrolledAt: m.EnrolledAt,
		Grade:      m.Grade,
	}
}

func enrollmentModelFromEntity(enrollment entities.Enrollment) enrollmentModel {
	return enrollmentModel{
		EnrollmentID: enrollment.ID,
		StudentID:    enrollment.StudentID,
		CourseID:     enrollment.CourseID,
		EnrolledAt:   enrollment.EnrolledAt.UTC(),
		Grade:        enrollment.Grade,
	}
}
