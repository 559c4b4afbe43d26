package services

import (
	"testing"

	"store-api/dto"
	"store-api/mocks"
	"store-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Create(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service := NewUserService(repo)

	repo.On("FindByUserName", "alice").Return(nil, nil)
	repo.On("FindByEmail", "a@x.com").Return(nil, nil)

	var stored models.User
	repo.On("Create", mock.AnythingOfType("models.User")).
		Return(&models.User{ID: 1, UserName: "alice", Email: "a@x.com", FullName: "Alice"}, nil).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(models.User)
		})

	response, err := service.Create(dto.CreateUserInput{
		UserName: "alice",
		Email:    "a@x.com",
		Password: "supersecret",
		FullName: "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, uint(1), response.UserID)
	assert.Equal(t, "alice", response.UserName)

	// Only a bcrypt hash of the password reaches the store.
	assert.NotEqual(t, "supersecret", stored.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("supersecret")))

	repo.AssertExpectations(t)
}

func TestUserService_Create_DuplicateUserName(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service := NewUserService(repo)

	repo.On("FindByUserName", "alice").Return(&models.User{ID: 1, UserName: "alice"}, nil)

	response, err := service.Create(dto.CreateUserInput{
		UserName: "alice",
		Email:    "new@x.com",
		Password: "supersecret",
		FullName: "Alice",
	})
	assert.ErrorIs(t, err, ErrUserNameTaken)
	assert.Nil(t, response)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service := NewUserService(repo)

	repo.On("FindByUserName", "newname").Return(nil, nil)
	repo.On("FindByEmail", "a@x.com").Return(&models.User{ID: 1, Email: "a@x.com"}, nil)

	response, err := service.Create(dto.CreateUserInput{
		UserName: "newname",
		Email:    "a@x.com",
		Password: "supersecret",
		FullName: "Someone",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, response)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_FindById_Missing(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service := NewUserService(repo)

	repo.On("FindById", uint(42)).Return(nil, nil)

	response, err := service.FindById(42)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, response)
}
