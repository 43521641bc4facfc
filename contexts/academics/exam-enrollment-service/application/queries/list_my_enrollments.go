package queries

import (
	"context"
	"log/slog"

	"studentska/contexts/academics/exam-enrollment-service/domain/entities"
	"studentska/contexts/academics/exam-enrollment-service/ports"
)

// EnrollmentWithCourse is one ledger row hydrated with its course data.
type EnrollmentWithCourse struct {
	Enrollment entities.Enrollment
	Course     ports.CourseSnapshot
}

type ListMyEnrollmentsUseCase struct {
	Enrollments ports.EnrollmentRepository
	Courses     ports.CourseDirectory
	Logger      *slog.Logger
}

func (u ListMyEnrollmentsUseCase) Execute(ctx context.Context, studentID string) ([]EnrollmentWithCourse, error) {
	enrollments, err := u.Enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	items := make([]EnrollmentWithCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, _, err := u.Courses.GetCourse(ctx, enrollment.CourseID)
		if err != nil {
			return nil, err
		}
		// Course deletion purges its enrollments, so a miss here can only
		// be a read raced against that purge; surface the row without
		// course details rather than failing the whole listing.
		items = append(items, EnrollmentWithCourse{
			Enrollment: enrollment,
			Course:     course,
		})
	}
	return items, nil
}
