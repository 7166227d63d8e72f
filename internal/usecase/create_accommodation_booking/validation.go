package create_accommodation_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// validateRequest проверяет входные данные до обращения к хранилищу
func validateRequest(req *Request, now time.Time) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guest id must be positive", ErrInvalidInput)
	}
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}
	if req.NumGuests < 1 {
		return fmt.Errorf("%w: at least one guest is required", ErrInvalidInput)
	}
	if req.NumGuests > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: at most %d guests per booking", ErrInvalidInput, domain.MaxGuestsPerBooking)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidDates)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDates)
	}

	today := truncateToDay(now)
	if truncateToDay(req.CheckIn).Before(today) {
		return fmt.Errorf("%w: check-in %s is in the past", ErrInvalidDates, req.CheckIn.Format(domain.DateFormat))
	}

	if req.ContactEmail != nil && !strings.Contains(*req.ContactEmail, "@") {
		return fmt.Errorf("%w: invalid contact email", ErrInvalidInput)
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func contactOrDefault(override *string, fallback string) string {
	if override != nil {
		if v := strings.TrimSpace(*override); v != "" {
			return v
		}
	}
	return fallback
}
