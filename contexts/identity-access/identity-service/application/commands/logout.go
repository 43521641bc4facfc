package commands

import (
	"context"
	"log/slog"

	application "studentska/contexts/identity-access/identity-service/application"
	domainerrors "studentska/contexts/identity-access/identity-service/domain/errors"
	"studentska/contexts/identity-access/identity-service/ports"
)

type LogoutCommand struct {
	RawToken string
}

type LogoutUseCase struct {
	Tokens ports.TokenRepository
	Codec  ports.TokenCodec
	Logger *slog.Logger
}

func (u LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	logger := application.ResolveLogger(u.Logger)

	claims, err := u.Codec.Parse(cmd.RawToken)
	if err != nil {
		return domainerrors.ErrInvalidToken
	}
	if err := u.Tokens.Delete(ctx, claims.TokenID); err != nil {
		return err
	}

	logger.Info("account logged out",
		"event", "account_logged_out",
		"module", "identity-access/identity-service",
		"layer", "application",
		"account_id", claims.AccountID,
	)
	return nil
}
