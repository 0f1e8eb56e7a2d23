package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"freight-match/internal/config"
	domainUser "freight-match/internal/domain/user"
	"freight-match/internal/logger"
	appErrors "freight-match/pkg/errors"
	"freight-match/pkg/utils"
)

// Service implements account and authentication use cases.
type Service struct {
	userRepo domainUser.Repository
	config   *config.Config
}

func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	email, err := utils.ValidateAndSanitizeEmail(req.Email)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid email", err)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, domainUser.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domainUser.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		FiscalID:     req.FiscalID,
		PhoneNumber:  req.Phone,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, expiresAt, err := utils.GenerateToken(u.ID, u.Email, u.Role, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User registered",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
		zap.String("role", u.Role),
		zap.String("event", "user_registered"),
	)

	return &AuthResponse{
		User:      ToUserResponse(u),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_unknown_email"),
			)
		}
		return nil, err
	}

	if !u.IsActive {
		logger.Warn("Login attempt for inactive user",
			zap.String("user_id", u.ID.String()),
			zap.String("event", "login_failed_inactive_user"),
		)
		return nil, appErrors.ErrUserInactive
	}

	if !utils.CheckPassword(u.PasswordHash, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", u.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(u.ID, u.Email, u.Role, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
		zap.String("event", "login_success"),
	)

	return &AuthResponse{
		User:      ToUserResponse(u),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.FiscalID != nil {
		u.FiscalID = req.FiscalID
	}
	if req.Phone != nil {
		sanitized := utils.SanitizePhone(*req.Phone)
		u.PhoneNumber = &sanitized
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	return ToUserResponse(u), nil
}

// RegisterDevice stores the mobile push token the app obtained from its
// platform, making the user a fan-out target.
func (s *Service) RegisterDevice(ctx context.Context, userID uuid.UUID, req *RegisterDeviceRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := s.userRepo.SetDeviceToken(ctx, userID, req.DeviceToken, req.Platform); err != nil {
		return err
	}

	logger.Info("Device token registered",
		zap.String("user_id", userID.String()),
		zap.String("platform", req.Platform),
		zap.String("event", "device_token_registered"),
	)

	return nil
}

func (s *Service) UnregisterDevice(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.ClearDeviceToken(ctx, userID)
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(u), nil
}

func (s *Service) ListUsers(ctx context.Context, page, pageSize int) (*UserListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	users, total, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = *ToUserResponse(u)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &UserListResponse{
		Data: responses,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			TotalPages: totalPages,
		},
	}, nil
}

// DeleteUser is an administrative removal with no cascading contract.
func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	logger.Info("User deleted",
		zap.String("user_id", userID.String()),
		zap.String("event", "user_deleted"),
	)

	return nil
}
