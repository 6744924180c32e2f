package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"onboard-backend/db"
	membershipstore "onboard-backend/lib/membership/store"
	usersstore "onboard-backend/lib/users/store"
	authutils "onboard-backend/lib/utils/auth-utils"
	"onboard-backend/models"
	authapimodels "onboard-backend/models/api/auth"
	dbmodels "onboard-backend/models/db"
)

type Provider interface {
	Register(data authapimodels.RegisterData) (id string, err error)
	Login(data authapimodels.LoginData) (authapimodels.TokenView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore:      usersstore.NewInstance(db.DB),
		membershipStore: membershipstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore      usersstore.Provider
	membershipStore membershipstore.Provider
}

func (i impl) Register(data authapimodels.RegisterData) (id string, err error) {
	exist, err := i.usersStore.GetByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist != nil {
		return "", errors.Wrap(models.ErrConflict, "пользователь с таким email уже зарегистрирован")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec := dbmodels.User{
		Email:        data.Email,
		PasswordHash: string(hash),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
	}
	id, err = i.usersStore.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("user_id", id).Info("зарегистрирован пользователь")
	return id, nil
}

func (i impl) Login(data authapimodels.LoginData) (authapimodels.TokenView, error) {
	user, err := i.usersStore.GetByEmail(data.Email)
	if err != nil {
		return authapimodels.TokenView{}, err
	}
	if user == nil {
		return authapimodels.TokenView{}, errors.Wrap(models.ErrNotFound, "пользователь не найден")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(data.Password)); err != nil {
		return authapimodels.TokenView{}, errors.Wrap(models.ErrInvalidInput, "неверный пароль")
	}
	// вход от имени компании требует активного членства в ней
	membershipID := ""
	role := models.MembershipRole("")
	if data.CompanyID != "" {
		member, err := i.membershipStore.GetActiveByUserAndCompany(user.ID, data.CompanyID)
		if err != nil {
			return authapimodels.TokenView{}, err
		}
		if member == nil {
			return authapimodels.TokenView{}, errors.Wrap(models.ErrNotFound, "активное членство в компании не найдено")
		}
		membershipID = member.ID
		role = member.Role
	}
	access, err := authutils.GetToken(user.ID, membershipID, data.CompanyID, role)
	if err != nil {
		return authapimodels.TokenView{}, errors.Wrap(err, "ошибка выпуска токена")
	}
	refresh, err := authutils.GetRefreshToken(user.ID)
	if err != nil {
		return authapimodels.TokenView{}, errors.Wrap(err, "ошибка выпуска refresh токена")
	}
	log.WithField("user_id", user.ID).Info("выполнен вход")
	return authapimodels.TokenView{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
