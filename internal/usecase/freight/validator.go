package freight

import (
	"fmt"
	"strconv"

	domainFreight "freight-match/internal/domain/freight"
	appErrors "freight-match/pkg/errors"
)

// ParsePrice converts the submitted price string into a positive amount.
func ParsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, appErrors.NewAppError("VALIDATION_ERROR", "Price must be numeric", domainFreight.ErrInvalidPrice)
	}
	if price <= 0 {
		return 0, appErrors.NewAppError("VALIDATION_ERROR", "Price must be positive", domainFreight.ErrInvalidPrice)
	}

	return price, nil
}

// ValidateStatusTransition checks the linear lifecycle:
// available -> reserved -> completed, completed terminal.
func ValidateStatusTransition(currentStatus, newStatus domainFreight.JobStatus) error {
	validTransitions := map[domainFreight.JobStatus][]domainFreight.JobStatus{
		domainFreight.StatusAvailable: {
			domainFreight.StatusReserved,
		},
		domainFreight.StatusReserved: {
			domainFreight.StatusCompleted,
		},
		domainFreight.StatusCompleted: {
			// Terminal state - no transitions
		},
	}

	allowedStatuses, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown current status: %s", currentStatus),
			nil,
		)
	}

	for _, allowed := range allowedStatuses {
		if newStatus == allowed {
			return nil
		}
	}

	return appErrors.NewAppError(
		"INVALID_TRANSITION",
		fmt.Sprintf("Cannot transition from %s to %s", currentStatus, newStatus),
		domainFreight.ErrInvalidTransition,
	)
}
