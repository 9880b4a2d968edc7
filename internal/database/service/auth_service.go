package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/graphblog/api/internal/config"
	"github.com/graphblog/api/internal/database/models"
	"github.com/graphblog/api/internal/database/repository"
)

// Claims is the signed token payload. Ownership checks trust these
// fields as-is; only Me re-reads the store, so claims can outlive the
// record they describe.
type Claims struct {
	UserID  uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(name, email, password string) (*models.User, error)
	Login(email, password string) (*models.User, string, error)
	Me(claims *Claims) (*models.User, error)
	SignToken(user *models.User) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo        repository.UserRepository
	jwtSecret       string
	tokenExpiration time.Duration
	adminEmail      string
	adminPassword   string
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:        userRepo,
		jwtSecret:       cfg.JWTSecret,
		tokenExpiration: time.Duration(cfg.TokenExpiration) * time.Second,
		adminEmail:      cfg.AdminEmail,
		adminPassword:   cfg.AdminPassword,
		logger:          logger,
	}
}

func (s *authService) Signup(name, email, password string) (*models.User, error) {
	s.logger.Info("📝 [AuthService] Signup attempt", "email", email)

	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [AuthService] Email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, err
	}

	// Bootstrap-admin: the supplied plaintext pair is compared against
	// the configured admin credentials, not against any hash.
	isAdmin := s.adminEmail != "" &&
		email == s.adminEmail &&
		password == s.adminPassword

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		IsAdmin:  isAdmin,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [AuthService] User signed up", "user_id", user.ID, "is_admin", isAdmin)
	return user, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] Account not found", "email", email)
			return nil, "", ErrAccountNotFound
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.SignToken(user)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to sign token", "error", err)
		return nil, "", err
	}

	s.logger.Info("✅ [AuthService] User logged in", "user_id", user.ID)
	return user, token, nil
}

// Me re-fetches the live record; the token's claims can outlive it.
func (s *authService) Me(claims *Claims) (*models.User, error) {
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] Token refers to a deleted user", "user_id", claims.UserID)
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) SignToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("no account with that email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
