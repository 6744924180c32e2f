package authapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"onboard-backend/models"
)

type RegisterData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r RegisterData) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return errors.Wrap(models.ErrInvalidInput, "не указан email")
	}
	if len(r.Password) < 8 {
		return errors.Wrap(models.ErrInvalidInput, "пароль короче 8 символов")
	}
	return nil
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// компания, от имени которой выполняется вход
	CompanyID string `json:"company_id"`
}

func (r LoginData) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.Wrap(models.ErrInvalidInput, "не указан email или пароль")
	}
	return nil
}

type TokenView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
