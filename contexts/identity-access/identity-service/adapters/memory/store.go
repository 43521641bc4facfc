package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"studentska/contexts/identity-access/identity-service/domain/entities"
	domainerrors "studentska/contexts/identity-access/identity-service/domain/errors"
)

// Store is an in-memory adapter implementing the identity ports for local
// runtime and tests. Email and index number are kept unique under the same
// conditions as the postgres indexes.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]entities.Account
	tokens   map[string]entities.Token
	order    []string
	sequence uint64
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]entities.Account),
		tokens:   make(map[string]entities.Token),
		order:    make([]string, 0),
	}
}

func (s *Store) Create(_ context.Context, account entities.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return domainerrors.ErrEmailTaken
		}
		if existing.IndexNumber == account.IndexNumber {
			return domainerrors.ErrIndexNumberTaken
		}
	}
	s.accounts[account.ID] = account
	s.order = append(s.order, account.ID)
	return nil
}

func (s *Store) Update(_ context.Context, account entities.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; !ok {
		return domainerrors.ErrAccountNotFound
	}
	s.accounts[account.ID] = account
	return nil
}

func (s *Store) Delete(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountID]; !ok {
		return domainerrors.ErrAccountNotFound
	}
	delete(s.accounts, accountID)
	for i, id := range s.order {
		if id == accountID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Get(_ context.Context, accountID string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return entities.Account{}, domainerrors.ErrAccountNotFound
}

func (s *Store) List(_ context.Context) ([]entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Account, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.accounts[id])
	}
	return items, nil
}

func (s *Store) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) IndexNumberExists(_ context.Context, indexNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.IndexNumber == indexNumber {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateToken(_ context.Context, token entities.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token.ID] = token
	return nil
}

func (s *Store) DeleteToken(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, tokenID)
	return nil
}

func (s *Store) DeleteTokensByAccount(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, token := range s.tokens {
		if token.AccountID == accountID {
			delete(s.tokens, id)
		}
	}
	return nil
}

func (s *Store) TokenExists(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tokens[tokenID]
	return ok, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("account-%d", value), nil
}

// TokenStore adapts the shared Store to the token repository port, whose
// method names collide with the account repository's.
type TokenStore struct {
	Store *Store
}

func (t TokenStore) Create(ctx context.Context, token entities.Token) error {
	return t.Store.CreateToken(ctx, token)
}

func (t TokenStore) Delete(ctx context.Context, tokenID string) error {
	return t.Store.DeleteToken(ctx, tokenID)
}

func (t TokenStore) DeleteByAccount(ctx context.Context, accountID string) error {
	return t.Store.DeleteTokensByAccount(ctx, accountID)
}

func (t TokenStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	return t.Store.TokenExists(ctx, tokenID)
}
