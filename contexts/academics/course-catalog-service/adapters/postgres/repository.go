package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studentska/contexts/academics/course-catalog-service/domain/entities"
	domainerrors "studentska/contexts/academics/course-catalog-service/domain/errors"
	"studentska/contexts/academics/course-catalog-service/ports"

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

func (r *Repository) Create(ctx context.Context, course entities.Course) error {
	row := courseModelFromEntity(course)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrCodeTaken
		}
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, course entities.Course) error {
	row := courseModelFromEntity(course)
	result := r.db.WithContext(ctx).
		Model(&courseModel{}).
		Where("course_id = ?", course.ID).
		Updates(map[string]any{
			"name":       row.Name,
			"code":       row.Code,
			"espb":       row.Espb,
			"semester":   row.Semester,
			"study_year": row.StudyYear,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrCodeTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCourseNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, courseID string) error {
	result := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&courseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCourseNotFound
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, courseID string) (entities.Course, error) {
	var row courseModel
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Course{}, domainerrors.ErrCourseNotFound
		}
		return entities.Course{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Course, error) {
	var rows []courseModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Course, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) Search(ctx context.Context, filter ports.SearchFilter) ([]entities.Course, int, error) {
	tx := r.db.WithContext(ctx).Model(&courseModel{})

	if filter.NameContains != "" {
		tx = tx.Where("name ILIKE ?", "%"+filter.NameContains+"%")
	}
	if filter.CodeContains != "" {
		tx = tx.Where("code LIKE ?", "%"+filter.CodeContains+"%")
	}
	if filter.Credits != nil {
		tx = tx.Where("espb = ?", *filter.Credits)
	}
	if filter.Semester != nil {
		tx = tx.Where("semester = ?", *filter.Semester)
	}
	if filter.Year != nil {
		tx = tx.Where("study_year = ?", *filter.Year)
	}
	if filter.CreditsMin != nil {
		tx = tx.Where("espb >= ?", *filter.CreditsMin)
	}
	if filter.CreditsMax != nil {
		tx = tx.Where("espb <= ?", *filter.CreditsMax)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := sortColumn(filter.SortBy)
	if filter.SortDesc {
		order += " DESC"
	} else {
		order += " ASC"
	}
	// Secondary key keeps pages stable when the sort field repeats.
	order += ", course_id ASC"

	var rows []courseModel
	if err := tx.Order(order).Offset(filter.Offset).Limit(filter.Limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]entities.Course, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *Repository) CodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&courseModel{}).Where("code = ?", code)
	if excludeID != "" {
		tx = tx.Where("course_id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// sortColumn maps the public sort field names onto table columns. The use
// case has already reduced SortBy to the allow-list.
func sortColumn(sortBy string) string {
	switch sortBy {
	case ports.SortByCode:
		return "code"
	case ports.SortByCredits:
		return "espb"
	case ports.SortBySemester:
		return "semester"
	case ports.SortByYear:
		return "study_year"
	case ports.SortByCreatedAt:
		return "created_at"
	default:
		return "name"
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Migrate creates or updates the courses schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&courseModel{})
}

type courseModel struct {
	CourseID  string    `gorm:"column:course_id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Code      string    `gorm:"column:code;uniqueIndex:courses_code_unique"`
	Espb      int       `gorm:"column:espb"`
	Semester  *int      `gorm:"column:semester"`
	StudyYear *int      `gorm:"column:study_year"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (courseModel) TableName() string {
	return "courses"
}

func (m courseModel) toEntity() entities.Course {
	return entities.Course{
		ID:        m.CourseID,
		Name:      m.Name,
		Code:      m.Code,
		Credits:   m.Espb,
		Semester:  m.Semester,
		Year:      m.StudyYear,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func courseModelFromEntity(course entities.Course) courseModel {
	return courseModel{
		CourseID:  course.ID,
		Name:      course.Name,
		Code:      course.Code,
		Espb:      course.Credits,
		Semester:  course.Semester,
		StudyYear: course.Year,
		CreatedAt: course.CreatedAt.UTC(),
		UpdatedAt: course.UpdatedAt.UTC(),
	}
}
