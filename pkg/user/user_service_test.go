package user

import (
	"context"
	"testing"

	"agrimarket-backend/domain"
	"agrimarket-backend/entities"
	"agrimarket-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	usersByEmail map[string]*entities.User
	usersByID    map[string]*entities.User
	farmers      []*entities.Farmer
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		usersByEmail: make(map[string]*entities.User),
		usersByID:    make(map[string]*entities.User),
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := f.usersByEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.usersByID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) CreateFarmer(_ context.Context, farmer *entities.Farmer) error {
	f.farmers = append(f.farmers, farmer)
	return nil
}

func (f *fakeUserRepository) GetFarmerByUserID(_ context.Context, userID string) (*entities.Farmer, error) {
	for _, farmer := range f.farmers {
		if farmer.UserID.String() == userID {
			return farmer, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	req := domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     domain.RoleUser,
	}

	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestRegisterFarmerCreatesFarmerRecord(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "secret123",
		Role:     domain.RoleFarmer,
		FarmName: "Green Acres",
		Location: "Nashik",
	})

	require.NoError(t, err)
	require.Len(t, repo.farmers, 1)
	assert.Equal(t, res.ID, repo.farmers[0].UserID.String())
	assert.Equal(t, "Green Acres", repo.farmers[0].FarmName)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     domain.RoleUser,
	})

	require.NoError(t, err)
	stored := repo.usersByEmail["asha@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     domain.RoleUser,
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), jwt.NewJWTService())

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()
	service := NewUserService(repo, jwtService)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     domain.RoleUser,
	})
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	_, email, role, err := jwtService.GetUserDetailByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", email)
	assert.Equal(t, domain.RoleUser, role)
}

func TestProfileUnknownUser(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), jwt.NewJWTService())

	_, err := service.Profile(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
