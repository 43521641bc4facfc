package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "studentska/contexts/academics/course-catalog-service/application"
	"studentska/contexts/academics/course-catalog-service/domain/entities"
	domainerrors "studentska/contexts/academics/course-catalog-service/domain/errors"
	"studentska/contexts/academics/course-catalog-service/ports"
	"studentska/internal/shared/validation"
)

const (
	maxNameLength = 255
	maxCodeLength = 10
	minCredits    = 1
	maxCredits    = 30
)

type CreateCourseCommand struct {
	Name     string
	Code     string
	Credits  int
	Semester *int
	Year     *int
}

type CreateCourseUseCase struct {
	Courses     ports.CourseRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateCourseUseCase) Execute(ctx context.Context, cmd CreateCourseCommand) (entities.Course, error) {
	logger := application.ResolveLogger(u.Logger)

	verrs := validation.New()
	validateName(verrs, cmd.Name, true)
	validateCode(verrs, cmd.Code, true)
	validateCredits(verrs, cmd.Credits)
	validateSemester(verrs, cmd.Semester)
	validateYear(verrs, cmd.Year)

	if !verrs.Has() {
		taken, err := u.Courses.CodeExists(ctx, cmd.Code, "")
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

	id, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Course{}, err
	}

	now := u.Clock.Now().UTC()
	course := entities.Course{
		ID:        id,
		Name:      cmd.Name,
		Code:      cmd.Code,
		Credits:   cmd.Credits,
		Semester:  cmd.Semester,
		Year:      cmd.Year,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.Courses.Create(ctx, course); err != nil {
		// The unique index closes the race between the check above and the
		// insert; report it as the same field error.
		if errors.Is(err, domainerrors.ErrCodeTaken) {
			verrs.Add("sifra_predmeta", "The sifra predmeta has already been taken.")
			return entities.Course{}, verrs.Err()
		}
		logger.Error("course create failed",
			"event", "course_create_failed",
			"module", "academics/course-catalog-service",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.Course{}, err
	}

	logger.Info("course created",
		"event", "course_created",
		"module", "academics/course-catalog-service",
		"layer", "application",
		"course_id", course.ID,
		"code", course.Code,
	)
	return course, nil
}

func validateName(verrs *validation.Errors, name string, required bool) {
	if strings.TrimSpace(name) == "" {
		if required {
			verrs.Add("naziv", "The naziv field is required.")
		}
		return
	}
	if len(name) > maxNameLength {
		verrs.Addf("naziv", "The naziv may not be greater than %d characters.", maxNameLength)
	}
}

func validateCode(verrs *validation.Errors, code string, required bool) {
	if strings.TrimSpace(code) == "" {
		if required {
			verrs.Add("sifra_predmeta", "The sifra predmeta field is required.")
		}
		return
	}
	if len(code) > maxCodeLength {
		verrs.Addf("sifra_predmeta", "The sifra predmeta may not be greater than %d characters.", maxCodeLength)
	}
}

func validateCredits(verrs *validation.Errors, credits int) {
	if credits < minCredits {
		verrs.Addf("espb", "The espb must be at least %d.", minCredits)
	}
	if credits > maxCredits {
		verrs.Addf("espb", "The espb may not be greater than %d.", maxCredits)
	}
}

func validateSemester(verrs *validation.Errors, semester *int) {
	if semester == nil {
		return
	}
	if *semester < 1 || *semester > 8 {
		verrs.Add("semestar", "The semestar must be between 1 and 8.")
	}
}

func validateYear(verrs *validation.Errors, year *int) {
	if year == nil {
		return
	}
	if *year < 1 || *year > 4 {
		verrs.Add("godina", "The godina must be between 1 and 4.")
	}
}
