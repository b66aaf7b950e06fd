package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	apperrors "ecommerce-api/common/errors"
	"ecommerce-api/models"
	"ecommerce-api/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupRequest is the payload for user registration.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=8,max=20"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

// SigninRequest is the payload for login.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SigninResponse carries the issued token.
type SigninResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthService handles signup and signin.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Hour,
	}
}

// Signup registers a new user. Accounts created through signup are never
// admins; the flag can only be granted by an existing admin.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*models.User, *apperrors.Error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.Conflict("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Failed("Failed to check existing user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Failed("Failed to hash password", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		IsAdmin:  false,
		Phone:    req.Phone,
		Country:  req.Country,
		Address:  req.Address,
		City:     req.City,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.Failed("Failed to create user", err)
	}
	return user, nil
}

// Signin verifies credentials and issues a JWT.
func (s *AuthService) Signin(ctx context.Context, req *SigninRequest) (*SigninResponse, *apperrors.Error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(http.StatusUnauthorized, "Invalid email or password", nil)
		}
		return nil, apperrors.Failed("Failed to fetch user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.New(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, apperrors.Failed("Failed to sign token", err)
	}

	return &SigninResponse{Token: signed, ExpiresAt: expiresAt}, nil
}
