package commands

import (
	"context"
	"log/slog"

	application "studentska/contexts/academics/exam-enrollment-service/application"
	"studentska/contexts/academics/exam-enrollment-service/ports"
)

type UnenrollCommand struct {
	EnrollmentID string
	StudentID    string
}

type UnenrollUseCase struct {
	Enrollments ports.EnrollmentRepository
	Logger      *slog.Logger
}

// Execute deletes the enrollment scoped by owner. A foreign enrollment id
// behaves exactly like a missing one, so ownership is never leaked.
func (u UnenrollUseCase) Execute(ctx context.Context, cmd UnenrollCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if err := u.Enrollments.DeleteOwned(ctx, cmd.EnrollmentID, cmd.StudentID); err != nil {
		return err
	}

	logger.Info("exam unenrolled",
		"event", "exam_unenrolled",
		"module", "academics/exam-enrollment-service",
		"layer", "application",
		"enrollment_id", cmd.EnrollmentID,
		"student_id", cmd.StudentID,
	)
	return nil
}
