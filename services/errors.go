package services

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrUserNameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadCredential = errors.New("invalid username or password")
)
