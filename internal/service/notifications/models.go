package notifications

import "github.com/m04kA/tourism-booking-service/internal/domain"

// Виды уведомлений
const (
	KindTourBookingCreated     = "tour_booking_created"
	KindTourBookingCancelled   = "tour_booking_cancelled"
	KindAccommodationCreated   = "accommodation_booking_created"
	KindAccommodationConfirmed = "accommodation_booking_confirmed"
	KindAccommodationDeclined  = "accommodation_booking_declined"
	KindAccommodationCancelled = "accommodation_booking_cancelled"
	KindCompanionRequest       = "companion_request_received"
)

// Recipient получатель уведомления
type Recipient struct {
	Name     string
	Email    string
	Language string
}

// RecipientFromGuest получатель по данным гостя
func RecipientFromGuest(g *domain.Guest) Recipient {
	return Recipient{Name: g.FullName(), Email: g.Email, Language: g.Language()}
}

// ContactRecipient получатель по снимку контактов бронирования; язык берется у гостя, если он известен
func ContactRecipient(name, email string, guest *domain.Guest) Recipient {
	lang := domain.DefaultLanguage
	if guest != nil {
		lang = guest.Language()
	}
	return Recipient{Name: name, Email: email, Language: lang}
}
