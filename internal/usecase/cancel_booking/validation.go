package cancel_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// validateRequest проверяет запрос и возвращает нормализованную причину отмены
func validateRequest(req *Request) (string, error) {
	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if req.Actor.UserID <= 0 {
		return "", fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return "", fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(reason) > domain.MaxCancellationReasonLength {
		return "", fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return reason, nil
}
