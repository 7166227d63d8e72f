package create_tour_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// validateRequest проверяет входные данные до обращения к хранилищу
func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guest id must be positive", ErrInvalidInput)
	}
	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: schedule id must be positive", ErrInvalidInput)
	}
	if req.NumAdults < 0 || req.NumChildren < 0 {
		return fmt.Errorf("%w: guest counts must not be negative", ErrInvalidInput)
	}

	guests := req.NumAdults + req.NumChildren
	if guests < 1 {
		return fmt.Errorf("%w: at least one guest is required", ErrInvalidInput)
	}
	if guests > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: at most %d guests per booking", ErrInvalidInput, domain.MaxGuestsPerBooking)
	}
	if req.AdditionalFees < 0 || req.Discounts < 0 {
		return fmt.Errorf("%w: fees and discounts must not be negative", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.CompanionIDs))
	for _, id := range req.CompanionIDs {
		if id <= 0 || id == req.GuestID {
			return fmt.Errorf("%w: invalid companion id %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate companion id %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.ContactEmail != nil && !strings.Contains(*req.ContactEmail, "@") {
		return fmt.Errorf("%w: invalid contact email", ErrInvalidInput)
	}

	return nil
}

// contactOrDefault возвращает override, если он непустой, иначе значение из профиля
func contactOrDefault(override *string, fallback string) string {
	if override != nil {
		if v := strings.TrimSpace(*override); v != "" {
			return v
		}
	}
	return fallback
}
