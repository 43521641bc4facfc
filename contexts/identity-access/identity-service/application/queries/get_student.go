package queries

import (
	"context"
	"log/slog"

	"studentska/contexts/identity-access/identity-service/domain/entities"
	"studentska/contexts/identity-access/identity-service/ports"
)

type GetStudentQuery struct {
	AccountID string
}

type GetStudentUseCase struct {
	Accounts ports.AccountRepository
	Logger   *slog.Logger
}

func (u GetStudentUseCase) Execute(ctx context.Context, q GetStudentQuery) (entities.Account, error) {
	return u.Accounts.Get(ctx, q.AccountID)
}
