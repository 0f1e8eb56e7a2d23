package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserInactive  = errors.New("user account is inactive")
	ErrInvalidRole   = errors.New("invalid user role")
	ErrNoDeviceToken = errors.New("user has no registered device token")
)
