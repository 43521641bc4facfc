package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	application "studentska/contexts/identity-access/identity-service/application"
	"studentska/contexts/identity-access/identity-service/domain/entities"
	domainerrors "studentska/contexts/identity-access/identity-service/domain/errors"
	"studentska/contexts/identity-access/identity-service/ports"
	"studentska/internal/shared/validation"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Account     entities.Account
	AccessToken string
}

type LoginUseCase struct {
	Accounts    ports.AccountRepository
	Tokens      ports.TokenRepository
	Codec       ports.TokenCodec
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	TokenTTL    time.Duration
	Logger      *slog.Logger
}

func (u LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	logger := application.ResolveLogger(u.Logger)

	verrs := validation.New()
	if strings.TrimSpace(cmd.Email) == "" {
		verrs.Add("email", "The email field is required.")
	} else if _, err := mail.ParseAddress(cmd.Email); err != nil {
		verrs.Add("email", "The email must be a valid email address.")
	}
	if cmd.Password == "" {
		verrs.Add("password", "The password field is required.")
	}
	if err := verrs.Err(); err != nil {
		return LoginResult{}, err
	}

	account, err := u.Accounts.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return LoginResult{}, domainerrors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := u.Hasher.Compare(account.PasswordHash, cmd.Password); err != nil {
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	tokenID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return LoginResult{}, err
	}

	now := u.Clock.Now().UTC()
	expiresAt := now.Add(u.TokenTTL)
	signed, err := u.Codec.Issue(account, tokenID, expiresAt)
	if err != nil {
		return LoginResult{}, err
	}
	if err := u.Tokens.Create(ctx, entities.Token{
		ID:        tokenID,
		AccountID: account.ID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}); err != nil {
		return LoginResult{}, err
	}

	logger.Info("account logged in",
		"event", "account_logged_in",
		"module", "identity-access/identity-service",
		"layer", "application",
		"account_id", account.ID,
	)
	return LoginResult{
		Account:     account,
		AccessToken: signed,
	}, nil
}
