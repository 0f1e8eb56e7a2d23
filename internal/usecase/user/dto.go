package user

import (
	"time"

	"github.com/google/uuid"

	domainUser "freight-match/internal/domain/user"
)

// Request DTOs
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,min=2,max=255"`
	Password string  `json:"password" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=admin driver"`
	FiscalID *string `json:"fiscal_id" validate:"omitempty,min=11,max=18"`
	Phone    *string `json:"phone" validate:"omitempty,min=8,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=255"`
	FiscalID *string `json:"fiscal_id" validate:"omitempty,min=11,max=18"`
	Phone    *string `json:"phone" validate:"omitempty,min=8,max=20"`
}

type RegisterDeviceRequest struct {
	DeviceToken string `json:"device_token" validate:"required,min=10,max=500"`
	Platform    string `json:"platform" validate:"required,oneof=ios android"`
}

// Response DTOs
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	FiscalID  *string   `json:"fiscal_id,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	HasDevice bool      `json:"has_device"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}

type UserListResponse struct {
	Data       []UserResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		FiscalID:  u.FiscalID,
		Phone:     u.PhoneNumber,
		HasDevice: u.DeviceToken != nil,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
