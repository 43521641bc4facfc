package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "studentska/contexts/academics/exam-enrollment-service/application"
	"studentska/contexts/academics/exam-enrollment-service/domain/entities"
	domainerrors "studentska/contexts/academics/exam-enrollment-service/domain/errors"
	"studentska/contexts/academics/exam-enrollment-service/ports"
	"studentska/internal/shared/validation"
)

type EnrollCommand struct {
	StudentID string
	CourseID  string
}

type EnrollUseCase struct {
	Enrollments ports.EnrollmentRepository
	Courses     ports.CourseDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u EnrollUseCase) Execute(ctx context.Context, cmd EnrollCommand) (entities.Enrollment, error) {
	logger := application.ResolveLogger(u.Logger)

	verrs := validation.New()
	if strings.TrimSpace(cmd.CourseID) == "" {
		verrs.Add("course_id", "The course id field is required.")
	} else {
		_, found, err := u.Courses.GetCourse(ctx, cmd.CourseID)
		if err != nil {
			return entities.Enrollment{}, err
		}
		if !found {
			verrs.Add("course_id", "The selected course id is invalid.")
		}
	}
	if err := verrs.Err(); err != nil {
		return entities.Enrollment{}, err
	}

	exists, err := u.Enrollments.ExistsPair(ctx, cmd.StudentID, cmd.CourseID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if exists {
		return entities.Enrollment{}, domainerrors.ErrAlreadyEnrolled
	}

	id, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Enrollment{}, err
	}

	enrollment := entities.Enrollment{
		ID:         id,
		StudentID:  cmd.StudentID,
		CourseID:   cmd.CourseID,
		EnrolledAt: u.Clock.Now().UTC(),
	}

	// The composite unique index closes the race between the pair check
	// above and this insert.
	if err := u.Enrollments.Create(ctx, enrollment); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyEnrolled) {
			return entities.Enrollment{}, err
		}
		logger.Error("exam enroll failed",
			"event", "exam_enroll_failed",
			"module", "academics/exam-enrollment-service",
			"layer", "application",
			"student_id", cmd.StudentID,
			"course_id", cmd.CourseID,
			"error", err.Error(),
		)
		return entities.Enrollment{}, err
	}

	logger.Info("exam enrolled",
		"event", "exam_enrolled",
		"module", "academics/exam-enrollment-service",
		"layer", "application",
		"enrollment_id", enrollment.ID,
		"student_id", cmd.StudentID,
		"course_id", cmd.CourseID,
	)
	return enrollment, nil
}
