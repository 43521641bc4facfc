package commands

import (
	"context"
	"log/slog"

	application "studentska/contexts/identity-access/identity-service/application"
	"studentska/contexts/identity-access/identity-service/ports"
)

type DeleteStudentCommand struct {
	AccountID string
}

type DeleteStudentUseCase struct {
	Accounts    ports.AccountRepository
	Tokens      ports.TokenRepository
	Enrollments ports.EnrollmentPurger
	Logger      *slog.Logger
}

func (u DeleteStudentUseCase) Execute(ctx context.Context, cmd DeleteStudentCommand) error {
	logger := application.ResolveLogger(u.Logger)

	account, err := u.Accounts.Get(ctx, cmd.AccountID)
	if err != nil {
		return err
	}
	if err := u.Enrollments.DeleteByStudent(ctx, account.ID); err != nil {
		return err
	}
	if err := u.Tokens.DeleteByAccount(ctx, account.ID); err != nil {
		return err
	}
	if err := u.Accounts.Delete(ctx, account.ID); err != nil {
		return err
	}

	logger.Info("account deleted",
		"event", "account_deleted",
		"module", "identity-access/identity-service",
		"layer", "application",
		"account_id", account.ID,
	)
	return nil
}
