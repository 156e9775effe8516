package user

import (
	"context"
	"errors"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"
	"agrimarket-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Profile(ctx context.Context, userID string) (domain.ProfileResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	_, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	if req.Role == domain.RoleFarmer {
		farmer := &entities.Farmer{
			ID:       uuid.New(),
			UserID:   user.ID,
			FarmName: req.FarmName,
			Location: req.Location,
		}
		if err := s.userRepository.CreateFarmer(ctx, farmer); err != nil {
			return domain.RegisterResponse{}, err
		}
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrUserNotFound
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email, user.Role)
	return domain.LoginResponse{Token: token}, nil
}

func (s *userService) Profile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	return domain.ProfileResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}
