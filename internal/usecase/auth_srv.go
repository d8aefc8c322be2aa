package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/internal/data/repository"
	"she-fix/internal/dto/request"
	"she-fix/internal/dto/response"
	"she-fix/pkg/utils"
)

const defaultLanguage = "en"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)
	role := entity.UserRole(req.Role)

	// 2. Role-conditional attributes
	var profession *string
	if role == entity.RoleWorker {
		if req.Profession == nil || strings.TrimSpace(*req.Profession) == "" {
			return nil, fmt.Errorf("validation failed: profession: This field is required")
		}
		p := strings.TrimSpace(*req.Profession)
		profession = &p
	}

	// 3. Email is the unique contact
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = defaultLanguage
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        trimmedOrNil(req.Phone),
		PasswordHash: hashedPassword,
		Role:         role,
		Profession:   profession,
		KYCStatus:    entity.KYCStatusPending,
		Language:     language,
	}

	// 5. Save user; a concurrent registration can still hit the unique index
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("email already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	identifier := strings.TrimSpace(req.LoginID())

	// Try email first, then phone
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(identifier))
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("identifier", identifier))
		return nil, fmt.Errorf("failed to find user")
	}

	if user == nil {
		user, err = s.userRepo.FindByPhone(ctx, identifier)
		if err != nil {
			s.log.Error("Failed to find user by phone", zap.Error(err), zap.String("identifier", identifier))
			return nil, fmt.Errorf("failed to find user")
		}
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("identifier", identifier))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
