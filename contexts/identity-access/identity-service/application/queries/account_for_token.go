package queries

import (
	"context"
	"errors"
	"log/slog"

	"studentska/contexts/identity-access/identity-service/domain/entities"
	domainerrors "studentska/contexts/identity-access/identity-service/domain/errors"
	"studentska/contexts/identity-access/identity-service/ports"
)

type AccountForTokenQuery struct {
	RawToken string
}

// AccountForTokenUseCase resolves a bearer credential to its account. A
// signed token whose row was deleted at logout no longer authenticates.
type AccountForTokenUseCase struct {
	Accounts ports.AccountRepository
	Tokens   ports.TokenRepository
	Codec    ports.TokenCodec
	Logger   *slog.Logger
}

func (u AccountForTokenUseCase) Execute(ctx context.Context, q AccountForTokenQuery) (entities.Account, error) {
	claims, err := u.Codec.Parse(q.RawToken)
	if err != nil {
		return entities.Account{}, domainerrors.ErrInvalidToken
	}
	live, err := u.Tokens.Exists(ctx, claims.TokenID)
	if err != nil {
		return entities.Account{}, err
	}
	if !live {
		return entities.Account{}, domainerrors.ErrInvalidToken
	}
	account, err := u.Accounts.Get(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return entities.Account{}, domainerrors.ErrInvalidToken
		}
		return entities.Account{}, err
	}
	return account, nil
}
