package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"studentska/contexts/identity-access/authorization"
	application "studentska/contexts/identity-access/identity-service/application"
	"studentska/contexts/identity-access/identity-service/domain/entities"
	domainerrors "studentska/contexts/identity-access/identity-service/domain/errors"
	"studentska/contexts/identity-access/identity-service/ports"
	"studentska/internal/shared/validation"
)

const (
	maxNameLength  = 255
	maxIndexLength = 20
	maxEmailLength = 255
	minPassword    = 8
)

type RegisterCommand struct {
	FirstName            string
	LastName             string
	IndexNumber          string
	Email                string
	Password             string
	PasswordConfirmation string
}

type RegisterUseCase struct {
	Accounts    ports.AccountRepository
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute self-registers a student account. Registration never produces an
// admin; those are seeded out of band.
func (u RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (entities.Account, error) {
	logger := application.ResolveLogger(u.Logger)

	verrs := validation.New()
	if strings.TrimSpace(cmd.FirstName) == "" {
		verrs.Add("ime", "The ime field is required.")
	} else if len(cmd.FirstName) > maxNameLength {
		verrs.Addf("ime", "The ime may not be greater than %d characters.", maxNameLength)
	}
	if strings.TrimSpace(cmd.LastName) == "" {
		verrs.Add("prezime", "The prezime field is required.")
	} else if len(cmd.LastName) > maxNameLength {
		verrs.Addf("prezime", "The prezime may not be greater than %d characters.", maxNameLength)
	}
	if strings.TrimSpace(cmd.IndexNumber) == "" {
		verrs.Add("broj_indeksa", "The broj indeksa field is required.")
	} else if len(cmd.IndexNumber) > maxIndexLength {
		verrs.Addf("broj_indeksa", "The broj indeksa may not be greater than %d characters.", maxIndexLength)
	}
	if strings.TrimSpace(cmd.Email) == "" {
		verrs.Add("email", "The email field is required.")
	} else if len(cmd.Email) > maxEmailLength {
		verrs.Addf("email", "The email may not be greater than %d characters.", maxEmailLength)
	} else if _, err := mail.ParseAddress(cmd.Email); err != nil {
		verrs.Add("email", "The email must be a valid email address.")
	}
	if len(cmd.Password) < minPassword {
		verrs.Addf("password", "The password must be at least %d characters.", minPassword)
	}
	if cmd.Password != cmd.PasswordConfirmation {
		verrs.Add("password", "The password confirmation does not match.")
	}

	if !verrs.Has() {
		if taken, err := u.Accounts.EmailExists(ctx, cmd.Email); err != nil {
			return entities.Account{}, err
		} else if taken {
			verrs.Add("email", "The email has already been taken.")
		}
		if taken, err := u.Accounts.IndexNumberExists(ctx, cmd.IndexNumber); err != nil {
			return entities.Account{}, err
		} else if taken {
			verrs.Add("broj_indeksa", "The broj indeksa has already been taken.")
		}
	}
	if err := verrs.Err(); err != nil {
		return entities.Account{}, err
	}

	hash, err := u.Hasher.Hash(cmd.Password)
	if err != nil {
		return entities.Account{}, err
	}
	id, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Account{}, err
	}

	now := u.Clock.Now().UTC()
	account := entities.Account{
		ID:           id,
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		IndexNumber:  cmd.IndexNumber,
		Email:        cmd.Email,
		PasswordHash: hash,
		Role:         string(authorization.RoleStudent),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.Accounts.Create(ctx, account); err != nil {
		// Unique indexes close the race between the checks above and the
		// insert; report them as the matching field errors.
		switch {
		case errors.Is(err, domainerrors.ErrEmailTaken):
			verrs.Add("email", "The email has already been taken.")
			return entities.Account{}, verrs.Err()
		case errors.Is(err, domainerrors.ErrIndexNumberTaken):
			verrs.Add("broj_indeksa", "The broj indeksa has already been taken.")
			return entities.Account{}, verrs.Err()
		}
		logger.Error("account register failed",
			"event", "account_register_failed",
			"module", "identity-access/identity-service",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.Account{}, err
	}

	logger.Info("account registered",
		"event", "account_registered",
		"module", "identity-access/identity-service",
		"layer", "application",
		"account_id", account.ID,
	)
	return account, nil
}
