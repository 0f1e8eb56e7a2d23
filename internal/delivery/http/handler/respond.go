package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainFreight "freight-match/internal/domain/freight"
	domainUser "freight-match/internal/domain/user"
	domainVehicle "freight-match/internal/domain/vehicle"
	appErrors "freight-match/pkg/errors"
	"freight-match/pkg/utils"
)

// respondError translates domain errors into HTTP status codes so every
// handler reports conflicts, missing resources and permission failures
// consistently.
func respondError(c *gin.Context, err error) {
	var appErr *appErrors.AppError

	switch {
	case errors.Is(err, domainUser.ErrUserNotFound),
		errors.Is(err, domainVehicle.ErrVehicleNotFound),
		errors.Is(err, domainFreight.ErrJobNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())

	case errors.Is(err, domainUser.ErrEmailTaken),
		errors.Is(err, domainVehicle.ErrPlateTaken),
		errors.Is(err, domainVehicle.ErrVehicleInUse),
		errors.Is(err, domainFreight.ErrJobNotAvailable),
		errors.Is(err, domainFreight.ErrJobNotReserved),
		errors.Is(err, domainFreight.ErrJobReserved):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())

	case errors.Is(err, domainVehicle.ErrNotOwner),
		errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())

	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrUserInactive):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, domainFreight.ErrNoCompatibleVehicle),
		errors.Is(err, domainFreight.ErrInvalidPrice),
		errors.Is(err, domainVehicle.ErrInvalidType),
		errors.Is(err, domainUser.ErrInvalidRole):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())

	case errors.As(err, &appErr):
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)

	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}

	id, ok := raw.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}

	return id, true
}
