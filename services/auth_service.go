package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/ladder-system/utils"
	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleOperator  = "operator"
	tokenLifetime = 24 * time.Hour
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, error)
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OperatorCredentials - единственная учетная запись оператора из конфига.
type OperatorCredentials struct {
	Email        string
	PasswordHash string
}

type authService struct {
	operator  OperatorCredentials
	jwtSecret []byte
	now       func() time.Time
}

func NewAuthService(operator OperatorCredentials, jwtSecret string) AuthService {
	return &authService{operator: operator, jwtSecret: []byte(jwtSecret), now: time.Now}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (string, error) {
	if s.operator.Email == "" || s.operator.PasswordHash == "" {
		return "", fmt.Errorf("%w: operator login is not configured", ErrAuthenticationFailed)
	}
	if !strings.EqualFold(strings.TrimSpace(input.Email), s.operator.Email) {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, s.operator.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":  s.operator.Email,
		"role": RoleOperator,
		"exp":  now.Add(tokenLifetime).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
