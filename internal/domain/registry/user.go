package registry

import (
	"github.com/agenthub/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a platform operator account
type User struct {
	shared.Audit
	Name         string `gorm:"size:30;not null"`
	Email        string `gorm:"size:30;not null"`
	PasswordHash string `gorm:"size:128;not null;column:password"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// Kind returns the entity kind name used in error reporting
func (User) Kind() string {
	return "User"
}

// NewUser creates an active user with a hashed password
func NewUser(name, email, password, createdBy string, isAdmin bool) (*User, error) {
	if createdBy == "" {
		createdBy = shared.SystemActor
	}
	u := &User{
		Audit:   shared.Audit{Active: true, CreatedBy: createdBy},
		Name:    name,
		Email:   email,
		IsAdmin: isAdmin,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores the password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HashPassword hashes a plaintext password for storage, used when a
// partial update replaces the password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
