package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studentska/contexts/identity-access/identity-service/domain/entities"
	domainerrors "studentska/contexts/identity-access/identity-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, account entities.Account) error {
	row := accountModelFromEntity(account)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		switch constraintName(err) {
		case "accounts_email_unique":
			return domainerrors.ErrEmailTaken
		case "accounts_index_number_unique":
			return domainerrors.ErrIndexNumberTaken
		}
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, account entities.Account) error {
	row := accountModelFromEntity(account)
	result := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("account_id = ?", account.ID).
		Updates(map[string]any{
			"first_name":    row.FirstName,
			"last_name":     row.LastName,
			"date_of_birth": row.DateOfBirth,
			"status":        row.Status,
			"updated_at":    row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, accountID string) error {
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&accountModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, accountID string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Account, error) {
	var rows []accountModel
	err := r.db.WithContext(ctx).
		Order("created_at ASC, account_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Account, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) IndexNumberExists(ctx context.Context, indexNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("index_number = ?", indexNumber).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TokenRepository persists issued bearer tokens in the same database.
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token entities.Token) error {
	row := tokenModelFromEntity(token)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *TokenRepository) Delete(ctx context.Context, tokenID string) error {
	return r.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Delete(&tokenModel{}).
		Error
}

func (r *TokenRepository) DeleteByAccount(ctx context.Context, accountID string) error {
	return r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&tokenModel{}).
		Error
}

func (r *TokenRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&tokenModel{}).
		Where("token_id = ?", tokenID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// constraintName returns the violated unique constraint, or "" when the
// error is not a unique violation.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

// Migrate creates or updates the accounts and access tokens schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&accountModel{}, &tokenModel{})
}

type accountModel struct {
	AccountID    string     `gorm:"column:account_id;primaryKey"`
	FirstName    string     `gorm:"column:first_name"`
	LastName     string     `gorm:"column:last_name"`
	IndexNumber  string     `gorm:"column:index_number;uniqueIndex:accounts_index_number_unique"`
	Email        string     `gorm:"column:email;uniqueIndex:accounts_email_unique"`
	PasswordHash string     `gorm:"column:password_hash"`
	DateOfBirth  *time.Time `gorm:"column:date_of_birth"`
	Status       string     `gorm:"column:status"`
	Role         string     `gorm:"column:role"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (accountModel) TableName() string {
	return "accounts"
}

func (m accountModel) toEntity() entities.Account {
	return entities.Account{
		ID:           m.AccountID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		IndexNumber:  m.IndexNumber,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		DateOfBirth:  m.DateOfBirth,
		Status:       m.Status,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func accountModelFromEntity(account entities.Account) accountModel {
	return accountModel{
		AccountID:    account.ID,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		IndexNumber:  account.IndexNumber,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		DateOfBirth:  account.DateOfBirth,
		Status:       account.Status,
		Role:         account.Role,
		CreatedAt:    account.CreatedAt.UTC(),
		UpdatedAt:    account.UpdatedAt.UTC(),
	}
}

type tokenModel struct {
	TokenID   string    `gorm:"column:token_id;primaryKey"`
	AccountID string    `gorm:"column:account_id;index"`
	IssuedAt  time.Time `gorm:"column:issued_at"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
}

func (tokenModel) TableName() string {
	return "access_tokens"
}

func tokenModelFromEntity(token entities.Token) tokenModel {
	return tokenModel{
		TokenID:   token.ID,
		AccountID: token.AccountID,
		IssuedAt:  token.IssuedAt.UTC(),
		ExpiresAt: token.ExpiresAt.UTC(),
	}
}
