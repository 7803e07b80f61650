// Package identity - клиент внешнего провайдера идентификации.
package identity

import (
	"context"
	"errors"
	"strings"
)

var ErrUserNotFound = errors.New("identity user not found")

// Profile - данные пользователя у провайдера
type Profile struct {
	ID              string
	FirstName       string
	LastName        string
	Username        string
	ProfileImageURL string
}

// Provider отдает профиль пользователя по его внешнему id
type Provider interface {
	GetUser(ctx context.Context, userID string) (*Profile, error)
}

// DisplayName - "Имя Фамилия"; если оба пустые, то username.
func DisplayName(p *Profile) string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Username
	}
	return name
}
