// internal/models/profile.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Profile struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash,omitempty"`
}

func (p *Profile) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PasswordHash = string(hashedPassword)
	return nil
}

func (p *Profile) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password))
}

func (p Profile) IsEmpty() bool {
	return p.Name == "" && p.Username == "" && p.PasswordHash == ""
}

type Order struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Total     float64   `json:"total,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
