package dto

import "store-api/models"

type CreateUserInput struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
}

// UserResponse is the wire projection of a User. The password hash is never
// part of it.
type UserResponse struct {
	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		FullName: user.FullName,
	}
}

func NewUserResponseList(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}
	return responses
}
