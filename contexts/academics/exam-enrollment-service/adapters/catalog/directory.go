package catalogadapter

import (
	"context"
	"errors"

	catalogerrors "studentska/contexts/academics/course-catalog-service/domain/errors"
	catalogports "studentska/contexts/academics/course-catalog-service/ports"
	"studentska/contexts/academics/exam-enrollment-service/ports"
)

// Directory adapts the course catalog's repository into the ledger's
// read-only CourseDirectory port. Wiring happens at the composition root so
// ledger domain/application code never imports the catalog context.
type Directory struct {
	Courses catalogports.CourseRepository
}

func (d Directory) GetCourse(ctx context.Context, courseID string) (ports.CourseSnapshot, bool, error) {
	course, err := d.Courses.Get(ctx, courseID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrCourseNotFound) {
			return ports.CourseSnapshot{}, false, nil
		}
		return ports.CourseSnapshot{}, false, err
	}
	return ports.CourseSnapshot{
		ID:       course.ID,
		Name:     course.Name,
		Code:     course.Code,
		Credits:  course.Credits,
		Semester: course.Semester,
		Year:     course.Year,
	}, true, nil
}
