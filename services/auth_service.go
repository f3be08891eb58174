package services

import (
	"context"
	"errors"

	"github.com/themisatsal/hilla-mobile-sub000/models"
	"github.com/themisatsal/hilla-mobile-sub000/stores"
	"github.com/themisatsal/hilla-mobile-sub000/utils"
)

type AuthService struct {
	users     stores.UserStore
	jwtSecret string
}

func NewAuthService(users stores.UserStore, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     email,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
		LifeStage: models.StageTrimester2,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, stores.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and returns a signed JWT.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(user.ID, s.jwtSecret)
}
