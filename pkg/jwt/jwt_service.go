package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"agrimarket-backend/domain"
	"agrimarket-backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, email string, role string) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserDetailByToken(token string) (string, string, string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "AGRIMARKET",
	}
}

func (j *jwtService) GenerateTokenUser(userID string, email string, role string) string {
	claims := jwtUserClaim{
		userID,
		email,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

// GetUserDetailByToken returns the user id, email and role embedded in a
// valid bearer token.
func (j *jwtService) GetUserDetailByToken(token string) (string, string, string, error) {
	parsed, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", "", domain.ErrTokenExpired
		}
		return "", "", "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", "", "", domain.ErrTokenInvalid
	}

	claims := parsed.Claims.(*jwtUserClaim)
	return claims.UserID, claims.Email, claims.Role, nil
}
