package queries

import (
	"context"
	"log/slog"

	application "studentska/contexts/identity-access/identity-service/application"
	"studentska/contexts/identity-access/identity-service/domain/entities"
	"studentska/contexts/identity-access/identity-service/ports"
)

type ListStudentsUseCase struct {
	Accounts ports.AccountRepository
	Logger   *slog.Logger
}

func (u ListStudentsUseCase) Execute(ctx context.Context) ([]entities.Account, error) {
	logger := application.ResolveLogger(u.Logger)

	accounts, err := u.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debug("accounts listed",
		"event", "accounts_listed",
		"module", "identity-access/identity-service",
		"layer", "application",
		"count", len(accounts),
	)
	return accounts, nil
}
