package queries

import (
	"context"
	"log/slog"

	"studentska/contexts/academics/course-catalog-service/domain/entities"
	"studentska/contexts/academics/course-catalog-service/ports"
)

type GetCourseUseCase struct {
	Courses ports.CourseRepository
	Logger  *slog.Logger
}

func (u GetCourseUseCase) Execute(ctx context.Context, courseID string) (entities.Course, error) {
	return u.Courses.Get(ctx, courseID)
}
