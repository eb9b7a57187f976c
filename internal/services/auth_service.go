package services

import (
	"errors"
	"fmt"

	"bridal_erp_backend/internal/models"
	"bridal_erp_backend/internal/repositories"
	"bridal_erp_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a login attempt fails. The message
// is intentionally identical for unknown users and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// --- AuthService Interface ---

// AuthService is the thin login perimeter. Operator/session management
// proper lives in an external identity service; this only verifies
// credentials and issues bearer tokens for the engine's API.
type AuthService interface {
	Login(creds models.Credentials) (*LoginResponse, error)
}

type authService struct {
	operatorRepo repositories.OperatorRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(or repositories.OperatorRepository) AuthService {
	return &authService{operatorRepo: or}
}

func (s *authService) Login(creds models.Credentials) (*LoginResponse, error) {
	operator, err := s.operatorRepo.GetOperatorByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch operator: %w", err)
	}
	if !operator.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(operator.ID, operator.Username, operator.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	return &LoginResponse{Token: token, Username: operator.Username, Role: operator.Role}, nil
}
