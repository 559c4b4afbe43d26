package services

import (
	"os"
	"time"

	"store-api/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(userName string, password string) (*string, error)
}

type AuthService struct {
	repository repositories.IUserRepository
}

func NewAuthService(repository repositories.IUserRepository) IAuthService {
	return &AuthService{repository: repository}
}

func (s *AuthService) Login(userName string, password string) (*string, error) {
	foundUser, err := s.repository.FindByUserName(userName)
	if err != nil {
		return nil, err
	}
	if foundUser == nil {
		return nil, ErrBadCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.HashedPassword), []byte(password)); err != nil {
		return nil, ErrBadCredential
	}

	return CreateToken(foundUser.ID, foundUser.Email)
}

func CreateToken(userID uint, email string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}
