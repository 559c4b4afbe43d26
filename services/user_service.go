package services

import (
	"store-api/dto"
	"store-api/models"
	"store-api/repositories"

	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Create(createUserInput dto.CreateUserInput) (*dto.UserResponse, error)
	FindAll() ([]dto.UserResponse, error)
	FindById(userID uint) (*dto.UserResponse, error)
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

// Create registers a new user. Username and email are checked in sequence so
// the caller learns which one collided; the unique columns back the checks if
// a concurrent registration slips between them.
func (s *UserService) Create(createUserInput dto.CreateUserInput) (*dto.UserResponse, error) {
	existing, err := s.repository.FindByUserName(createUserInput.UserName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserNameTaken
	}

	existing, err = s.repository.FindByEmail(createUserInput.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(createUserInput.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser, err := s.repository.Create(models.User{
		UserName:       createUserInput.UserName,
		Email:          createUserInput.Email,
		FullName:       createUserInput.FullName,
		HashedPassword: string(hashedPassword),
	})
	if err != nil {
		return nil, err
	}

	response := dto.NewUserResponse(newUser)
	return &response, nil
}

func (s *UserService) FindAll() ([]dto.UserResponse, error) {
	users, err := s.repository.FindAll()
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponseList(*users), nil
}

func (s *UserService) FindById(userID uint) (*dto.UserResponse, error) {
	user, err := s.repository.FindById(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response := dto.NewUserResponse(user)
	return &response, nil
}
