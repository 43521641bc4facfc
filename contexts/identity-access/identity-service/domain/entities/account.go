package entities

import "time"

// Account is a platform account: a self-registered student or a seeded
// admin. PasswordHash holds the bcrypt digest and must never reach a
// transport DTO.
type Account struct {
	ID           string
	FirstName    string
	LastName     string
	IndexNumber  string
	Email        string
	PasswordHash string
	DateOfBirth  *time.Time
	Status       string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Token is one issued bearer credential. The signed JWT carries the token
// id; deleting the row revokes the credential.
type Token struct {
	ID        string
	AccountID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
