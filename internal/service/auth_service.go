package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/models"
	"github.com/noah-isme/child-therapy-api/pkg/config"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
)

type userStore interface {
	FindByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	EmailExists(ctx context.Context, email string, role models.UserRole) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

type childLinker interface {
	LinkByCode(ctx context.Context, parentID, code string) (*dto.LinkChildResponse, error)
}

// AuthService issues access tokens and registers doctor and parent accounts.
type AuthService struct {
	users    userStore
	children childLinker
	jwtCfg   config.JWTConfig
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuthService constructs an auth service.
func NewAuthService(users userStore, children childLinker, jwtCfg config.JWTConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:    users,
		children: children,
		jwtCfg:   jwtCfg,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login authenticates an account of the requested type and returns a bearer
// token. Lookup misses and bad passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	role := roleFromUserType(req.UserType)

	user, err := s.users.FindByEmailAndRole(ctx, normalizeEmail(req.Email), role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load account")
	}
	if !user.Active {
		return nil, appErrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    req.UserType,
		UserID:      user.ID,
		UserName:    user.FullName,
	}, nil
}

// RegisterDoctor creates a clinician account.
func (s *AuthService) RegisterDoctor(ctx context.Context, req dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email, models.RoleDoctor); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	specialization := req.Specialization
	user := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordHash:   string(hash),
		FullName:       req.Name,
		Role:           models.RoleDoctor,
		Specialization: &specialization,
		Active:         true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	s.logger.Info("doctor registered", zap.String("user_id", user.ID))
	return userResponse(user), nil
}

// RegisterParent creates a guardian account. When a child code is supplied the
// child is linked in the same call; a bad code fails registration up front so
// the parent is not left with an unlinked account.
func (s *AuthService) RegisterParent(ctx context.Context, req dto.RegisterParentRequest) (*dto.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email, models.RoleParent); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.Name,
		Role:         models.RoleParent,
		Phone:        req.Phone,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	if req.ChildCode != nil && *req.ChildCode != "" && s.children != nil {
		if _, err := s.children.LinkByCode(ctx, user.ID, *req.ChildCode); err != nil {
			s.logger.Warn("child link during registration failed",
				zap.String("user_id", user.ID), zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("parent registered", zap.String("user_id", user.ID))
	return userResponse(user), nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(token string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := models.JWTClaims{
		UserID:   user.ID,
		Role:     user.Role,
		Email:    user.Email,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.Expiration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
}

func (s *AuthService) ensureEmailFree(ctx context.Context, email string, role models.UserRole) error {
	exists, err := s.users.EmailExists(ctx, email, role)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "email already registered")
	}
	return nil
}

func roleFromUserType(userType string) models.UserRole {
	if strings.EqualFold(userType, "parent") {
		return models.RoleParent
	}
	return models.RoleDoctor
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             user.ID,
		Name:           user.FullName,
		Email:          user.Email,
		Phone:          user.Phone,
		Specialization: user.Specialization,
		Role:           string(user.Role),
	}
}
