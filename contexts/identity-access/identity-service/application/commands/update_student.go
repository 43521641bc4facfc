package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "studentska/contexts/identity-access/identity-service/application"
	"studentska/contexts/identity-access/identity-service/domain/entities"
	"studentska/contexts/identity-access/identity-service/ports"
	"studentska/internal/shared/validation"
)

type UpdateStudentCommand struct {
	AccountID   string
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Status      *string
}

type UpdateStudentUseCase struct {
	Accounts ports.AccountRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u UpdateStudentUseCase) Execute(ctx context.Context, cmd UpdateStudentCommand) (entities.Account, error) {
	logger := application.ResolveLogger(u.Logger)

	verrs := validation.New()
	if cmd.FirstName != nil {
		if strings.TrimSpace(*cmd.FirstName) == "" {
			verrs.Add("ime", "The ime field is required.")
		} else if len(*cmd.FirstName) > maxNameLength {
			verrs.Add("ime", fmt.Sprintf("The ime field must not be greater than %d characters.", maxNameLength))
		}
	}
	if cmd.LastName != nil {
		if strings.TrimSpace(*cmd.LastName) == "" {
			verrs.Add("prezime", "The prezime field is required.")
		} else if len(*cmd.LastName) > maxNameLength {
			verrs.Add("prezime", fmt.Sprintf("The prezime field must not be greater than %d characters.", maxNameLength))
		}
	}
	if err := verrs.Err(); err != nil {
		return entities.Account{}, err
	}

	account, err := u.Accounts.Get(ctx, cmd.AccountID)
	if err != nil {
		return entities.Account{}, err
	}

	if cmd.FirstName != nil {
		account.FirstName = strings.TrimSpace(*cmd.FirstName)
	}
	if cmd.LastName != nil {
		account.LastName = strings.TrimSpace(*cmd.LastName)
	}
	if cmd.DateOfBirth != nil {
		dob := *cmd.DateOfBirth
		account.DateOfBirth = &dob
	}
	if cmd.Status != nil {
		account.Status = strings.TrimSpace(*cmd.Status)
	}
	account.UpdatedAt = u.Clock.Now().UTC()

	if err := u.Accounts.Update(ctx, account); err != nil {
		return entities.Account{}, err
	}

	logger.Info("account updated",
		"event", "account_updated",
		"module", "identity-access/identity-service",
		"layer", "application",
		"account_id", account.ID,
	)
	return account, nil
}
