package user

import (
	"context"

	"agrimarket-backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		CreateFarmer(ctx context.Context, farmer *entities.Farmer) error
		GetFarmerByUserID(ctx context.Context, userID string) (*entities.Farmer, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateFarmer(ctx context.Context, farmer *entities.Farmer) error {
	return r.db.WithContext(ctx).Create(farmer).Error
}

func (r *userRepository) GetFarmerByUserID(ctx context.Context, userID string) (*entities.Farmer, error) {
	var farmer entities.Farmer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}
