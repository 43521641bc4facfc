package commands

import (
	"context"
	"errors"
	"log/slog"

	application "studentska/contexts/academics/course-catalog-service/application"
	"studentska/contexts/academics/course-catalog-service/domain/entities"
	domainerrors "studentska/contexts/academics/course-catalog-service/domain/errors"
	"studentska/contexts/academics/course-catalog-service/ports"
	"studentska/internal/shared/validation"
)

// UpdateCourseCommand carries a partial update: nil members leave the
// stored value untouched.
type UpdateCourseCommand struct {
	CourseID string
	Name     *string
	Code     *string
	Credits  *int
	Semester *int
	Year     *int
}

type UpdateCourseUseCase struct {
	Courses ports.CourseRepository
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (u UpdateCourseUseCase) Execute(ctx context.Context, cmd UpdateCourseCommand) (entities.Course, error) {
	logger := application.ResolveLogger(u.Logger)

	course, err := u.Courses.Get(ctx, cmd.CourseID)
	if err != nil {
		return entities.Course{}, err
	}

	verrs := validation.New()
	if cmd.Name != nil {
		validateName(verrs, *cmd.Name, true)
	}
	if cmd.Code != nil {
		validateCode(verrs, *cmd.Code, true)
	}
	if cmd.Credits != nil {
		validateCredits(verrs, *cmd.Credits)
	}
	validateSemester(verrs, cmd.Semester)
	validateYear(verrs, cmd.Year)

	if cmd.Code != nil && !verrs.Has() {
		taken, err := u.Courses.CodeExists(ctx, *cmd.Code, course.ID)
		if err != nil {
			return entities.Course{}, err
		}
		if taken {
			verrs.Add("sifra_predmeta", "The sifra predmeta has already been taken.")
		}
	}
	if err := verrs.Err(); err != nil {
		return entities.Course{}, err
	}

	if cmd.Name != nil {
		course.Name = *cmd.Name
	}
	if cmd.Code != nil {
		course.Code = *cmd.Code
	}
	if cmd.Credits != nil {
		course.Credits = *cmd.Credits
	}
	if cmd.Semester != nil {
		course.Semester = cmd.Semester
	}
	if cmd.Year != nil {
		course.Year = cmd.Year
	}
	course.UpdatedAt = u.Clock.Now().UTC()

	if err := u.Courses.Update(ctx, course); err != nil {
		if errors.Is(err, domainerrors.ErrCodeTaken) {
			verrs.Add("sifra_predmeta", "The sifra predmeta has already been taken.")
			return entities.Course{}, verrs.Err()
		}
		logger.Error("course update failed",
			"event", "course_update_failed",
			"module", "academics/course-catalog-service",
			"layer", "application",
			"course_id", course.ID,
			"error", err.Error(),
		)
		return entities.Course{}, err
	}

	return course, nil
}
