package repositories

import (
	"errors"

	"store-api/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	Create(newUser models.User) (*models.User, error)
	FindAll() (*[]models.User, error)
	FindById(userID uint) (*models.User, error)
	FindByUserName(userName string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	ExistsById(userID uint) (bool, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(newUser models.User) (*models.User, error) {
	result := r.db.Create(&newUser)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newUser, nil
}

func (r *UserRepository) FindAll() (*[]models.User, error) {
	var users []models.User
	result := r.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

func (r *UserRepository) FindById(userID uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByUserName(userName string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "user_name = ?", userName)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) ExistsById(userID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
