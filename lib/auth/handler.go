package auth

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/db"
	staffstore "talentflow-backend/lib/auth/store"
	authutils "talentflow-backend/lib/utils/auth-utils"
	authapimodels "talentflow-backend/models/api/auth"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Register(req authapimodels.RegisterRequest) (id string, err error)
	Login(email, password string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: staffstore.NewInstance(db.DB),
	}
}

type impl struct {
	store staffstore.Provider
}

func (i impl) Register(req authapimodels.RegisterRequest) (string, error) {
	exists, err := i.store.ExistByEmail(req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New("a user with this email already exists")
	}
	rec := dbmodels.StaffUser{
		Email:     req.Email,
		Password:  authutils.GetMD5Hash(req.Password),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}
	return i.store.Create(rec)
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("user lookup by email failed")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no user with this email")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("user is deactivated")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	tokenString, err := authutils.GetToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("JWT generation failed")
		return authapimodels.JWTResponse{}, err
	}
	if err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()}); err != nil {
		logger.
			WithError(err).
			Error("last login update failed")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}
