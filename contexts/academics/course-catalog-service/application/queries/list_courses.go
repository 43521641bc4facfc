package queries

import (
	"context"
	"log/slog"

	"studentska/contexts/academics/course-catalog-service/domain/entities"
	"studentska/contexts/academics/course-catalog-service/ports"
)

// ListCoursesUseCase returns the whole catalog in store order; the
// unfiltered browse endpoint uses it.
type ListCoursesUseCase struct {
	Courses ports.CourseRepository
	Logger  *slog.Logger
}

func (u ListCoursesUseCase) Execute(ctx context.Context) ([]entities.Course, error) {
	return u.Courses.List(ctx)
}
