package domain

import (
	"strings"
	"time"
)

// User represents a registered account. A user owns categories and items;
// ownership checks compare against its ID.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	FullName       string    `json:"full_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User ready for insertion. The caller must supply the
// already-hashed password; plaintext never reaches the domain layer.
// The ID is assigned by the store on insert.
func NewUser(email, hashedPassword, fullName string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Email:          email,
		HashedPassword: hashedPassword,
		FullName:       fullName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User has valid data.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	if u.FullName == "" {
		return ErrEmptyName
	}
	if len(u.FullName) > 50 {
		return ErrNameTooLong
	}
	return nil
}
