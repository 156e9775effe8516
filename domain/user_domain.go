package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister   = "User registered successfully!"
	MessageSuccessLogin      = "Login successful!"
	MessageSuccessGetProfile = "Profile accessed successfully!"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetProfile = "failed to get profile"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Phone    string `json:"phone" validate:"required"`
		Address  string `json:"address" validate:"required"`
		Role     string `json:"role" validate:"required,oneof=user farmer admin"`

		// Farmer registration extras, persisted to the farmers table when
		// role is "farmer".
		FarmName string `json:"farm_name" validate:"omitempty"`
		Location string `json:"location" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	ProfileResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}
)
