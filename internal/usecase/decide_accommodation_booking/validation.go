package decide_accommodation_booking

import "fmt"

func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	switch req.Decision {
	case DecisionConfirm, DecisionDecline:
	default:
		return fmt.Errorf("%w: unknown decision %q", ErrInvalidInput, req.Decision)
	}
	if !req.Actor.IsStaff() {
		return ErrPermissionDenied
	}
	return nil
}
