package ports

import (
	"context"
	"time"

	"studentska/contexts/academics/exam-enrollment-service/domain/entities"
)

// EnrollmentRepository owns enrollment persistence. Create must rely on the
// store's composite unique index over (student, course), not on a prior
// read.
type EnrollmentRepository interface {
	// Create fails with domain ErrAlreadyEnrolled when the (student,
	// course) pair already has a row.
	Create(ctx context.Context, enrollment entities.Enrollment) error
	// DeleteOwned removes the enrollment only when studentID owns it; a
	// foreign or unknown id yields domain ErrEnrollmentNotFound.
	DeleteOwned(ctx context.Context, enrollmentID string, studentID string) error
	DeleteByStudent(ctx context.Context, studentID string) error
	DeleteByCourse(ctx context.Context, courseID string) error
	ListByStudent(ctx context.Context, studentID string) ([]entities.Enrollment, error)
	ExistsPair(ctx context.Context, studentID string, courseID string) (bool, error)
}

// CourseSnapshot is the read-side course view the ledger attaches to
// enrollments. It is deliberately smaller than the catalog's own entity.
type CourseSnapshot struct {
	ID       string
	Name     string
	Code     string
	Credits  int
	Semester *int
	Year     *int
}

// CourseDirectory is the ledger's read-only window into the course catalog.
type CourseDirectory interface {
	GetCourse(ctx context.Context, courseID string) (CourseSnapshot, bool, error)
}

// Clock allows deterministic testing of enrollment date stamping.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts enrollment identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
