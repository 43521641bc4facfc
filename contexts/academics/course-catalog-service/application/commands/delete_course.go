package commands

import (
	"context"
	"log/slog"

	application "studentska/contexts/academics/course-catalog-service/application"
	"studentska/contexts/academics/course-catalog-service/ports"
)

type DeleteCourseUseCase struct {
	Courses     ports.CourseRepository
	Enrollments ports.EnrollmentPurger
	Logger      *slog.Logger
}

// Execute removes the course after purging its exam enrollments, so no
// enrollment row is ever left pointing at a missing course.
func (u DeleteCourseUseCase) Execute(ctx context.Context, courseID string) error {
	logger := application.ResolveLogger(u.Logger)

	if _, err := u.Courses.Get(ctx, courseID); err != nil {
		return err
	}

	if err := u.Enrollments.DeleteByCourse(ctx, courseID); err != nil {
		return err
	}
	if err := u.Courses.Delete(ctx, courseID); err != nil {
		return err
	}

	logger.Info("course deleted",
		"event", "course_deleted",
		"module", "academics/course-catalog-service",
		"layer", "application",
		"course_id", courseID,
	)
	return nil
}
