package ports

import (
	"context"
	"time"

	"studentska/contexts/academics/course-catalog-service/domain/entities"
)

// Sort fields accepted by SearchFilter. Anything else falls back to the
// default name-ascending order.
const (
	SortByName      = "naziv"
	SortByCode      = "sifra_predmeta"
	SortByCredits   = "espb"
	SortBySemester  = "semestar"
	SortByYear      = "godina"
	SortByCreatedAt = "created_at"
)

// SearchFilter is the read-side criteria for the catalog search.
// Nil/empty members impose no constraint; all supplied filters compose
// with AND. Offset/Limit are resolved by the use case before the filter
// reaches an adapter.
type SearchFilter struct {
	NameContains string
	CodeContains string
	Credits      *int
	Semester     *int
	Year         *int
	CreditsMin   *int
	CreditsMax   *int
	SortBy       string
	SortDesc     bool
	Offset       int
	Limit        int
}

// CourseRepository owns course persistence. Create and Update must rely on
// the store's unique index on the course code, not on a prior read.
type CourseRepository interface {
	Create(ctx context.Context, course entities.Course) error
	Update(ctx context.Context, course entities.Course) error
	Delete(ctx context.Context, courseID string) error
	Get(ctx context.Context, courseID string) (entities.Course, error)
	List(ctx context.Context) ([]entities.Course, error)
	// Search returns the matching page plus the total match count across
	// the whole catalog.
	Search(ctx context.Context, filter SearchFilter) ([]entities.Course, int, error)
	// CodeExists reports whether code is used by a course other than
	// excludeID. excludeID may be empty on create.
	CodeExists(ctx context.Context, code string, excludeID string) (bool, error)
}

// EnrollmentPurger removes exam enrollments that reference a course being
// deleted. Implemented by the exam-enrollment-service repository.
type EnrollmentPurger interface {
	DeleteByCourse(ctx context.Context, courseID string) error
}

// Clock allows deterministic testing of created/updated stamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts course identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
