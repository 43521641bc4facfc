package queries

import (
	"context"
	"log/slog"

	application "studentska/contexts/identity-access/identity-service/application"
	"studentska/contexts/identity-access/identity-service/ports"
)

type RenderConfirmationQuery struct {
	AccountID string
}

type RenderConfirmationUseCase struct {
	Accounts ports.AccountRepository
	Renderer ports.ConfirmationRenderer
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u RenderConfirmationUseCase) Execute(ctx context.Context, q RenderConfirmationQuery) (ports.Document, error) {
	logger := application.ResolveLogger(u.Logger)

	account, err := u.Accounts.Get(ctx, q.AccountID)
	if err != nil {
		return ports.Document{}, err
	}
	doc, err := u.Renderer.Render(ctx, account, u.Clock.Now().UTC())
	if err != nil {
		return ports.Document{}, err
	}

	logger.Info("confirmation rendered",
		"event", "confirmation_rendered",
		"module", "identity-access/identity-service",
		"layer", "application",
		"account_id", account.ID,
	)
	return doc, nil
}
