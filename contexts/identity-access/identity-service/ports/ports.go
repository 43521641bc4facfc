package ports

import (
	"context"
	"time"

	"studentska/contexts/identity-access/identity-service/domain/entities"
)

// AccountRepository owns account persistence. Create must rely on the
// store's unique indexes over email and index number, not on prior reads.
type AccountRepository interface {
	Create(ctx context.Context, account entities.Account) error
	Update(ctx context.Context, account entities.Account) error
	Delete(ctx context.Context, accountID string) error
	Get(ctx context.Context, accountID string) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
	List(ctx context.Context) ([]entities.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	IndexNumberExists(ctx context.Context, indexNumber string) (bool, error)
}

// TokenRepository persists issued bearer tokens; a token is live exactly
// while its row exists.
type TokenRepository interface {
	Create(ctx context.Context, token entities.Token) error
	Delete(ctx context.Context, tokenID string) error
	DeleteByAccount(ctx context.Context, accountID string) error
	Exists(ctx context.Context, tokenID string) (bool, error)
}

// TokenClaims is what a parsed bearer credential asserts.
type TokenClaims struct {
	AccountID string
	Role      string
	TokenID   string
}

// TokenCodec signs and verifies bearer credentials.
type TokenCodec interface {
	Issue(account entities.Account, tokenID string, expiresAt time.Time) (string, error)
	Parse(raw string) (TokenClaims, error)
}

// PasswordHasher hashes registration passwords and verifies login attempts.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// Document is a rendered confirmation byte stream plus its media type.
type Document struct {
	ContentType string
	Data        []byte
}

// ConfirmationRenderer produces the enrollment-status confirmation document
// for the given account as of a date. It is an external collaborator; only
// the acting account's own record is ever passed in.
type ConfirmationRenderer interface {
	Render(ctx context.Context, account entities.Account, asOf time.Time) (Document, error)
}

// EnrollmentPurger removes ledger rows owned by an account being deleted.
// Implemented by the exam-enrollment-service repository.
type EnrollmentPurger interface {
	DeleteByStudent(ctx context.Context, studentID string) error
}

// Clock allows deterministic testing of token expiry and timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts account/token identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
