package translations

// Ключи текстов уведомлений
const (
	KeyTourBookingCreatedSubject = "tour_booking.created.subject"
	KeyTourBookingCreatedBody    = "tour_booking.created.body"

	KeyTourBookingCancelledSubject = "tour_booking.cancelled.subject"
	KeyTourBookingCancelledBody    = "tour_booking.cancelled.body"

	KeyAccommodationCreatedSubject = "accommodation_booking.created.subject"
	KeyAccommodationCreatedBody    = "accommodation_booking.created.body"

	KeyAccommodationConfirmedSubject = "accommodation_booking.confirmed.subject"
	KeyAccommodationConfirmedBody    = "accommodation_booking.confirmed.body"

	KeyAccommodationDeclinedSubject = "accommodation_booking.declined.subject"
	KeyAccommodationDeclinedBody    = "accommodation_booking.declined.body"

	KeyAccommodationCancelledSubject = "accommodation_booking.cancelled.subject"
	KeyAccommodationCancelledBody    = "accommodation_booking.cancelled.body"

	KeyCompanionRequestSubject = "companion_request.received.subject"
	KeyCompanionRequestBody    = "companion_request.received.body"
)
