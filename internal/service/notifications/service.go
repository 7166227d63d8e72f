package notifications

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/translations"
)

// Service формирует тексты уведомлений на языке получателя и отправляет их
// Ошибки отправки логируются и не возвращаются вызывающему
type Service struct {
	sender  Sender
	catalog Catalog
	logger  Logger
}

// NewService создает сервис уведомлений
func NewService(sender Sender, catalog Catalog, logger Logger) *Service {
	return &Service{sender: sender, catalog: catalog, logger: logger}
}

// TourBookingCreated подтверждение получения бронирования тура
func (s *Service) TourBookingCreated(ctx context.Context, to Recipient, booking *domain.TourBooking, tourName string) {
	subject := s.catalog.Text(translations.KeyTourBookingCreatedSubject, to.Language)
	body := s.catalog.Textf(translations.KeyTourBookingCreatedBody, to.Language,
		to.Name, booking.ID, tourName, booking.ScheduleStart.Format(domain.DateTimeFormat),
		booking.TotalGuests(), booking.TotalAmount)
	s.send(ctx, KindTourBookingCreated, to, subject, body)
}

// TourBookingCancelled уведомление об отмене бронирования тура
func (s *Service) TourBookingCancelled(ctx context.Context, to Recipient, booking *domain.TourBooking, tourName, reason string) {
	subject := s.catalog.Text(translations.KeyTourBookingCancelledSubject, to.Language)
	body := s.catalog.Textf(translations.KeyTourBookingCancelledBody, to.Language,
		to.Name, booking.ID, tourName, reason)
	s.send(ctx, KindTourBookingCancelled, to, subject, body)
}

// AccommodationBookingCreated подтверждение получения заявки на размещение
func (s *Service) AccommodationBookingCreated(ctx context.Context, to Recipient, booking *domain.AccommodationBooking) {
	subject := s.catalog.Text(translations.KeyAccommodationCreatedSubject, to.Language)
	body := s.catalog.Textf(translations.KeyAccommodationCreatedBody, to.Language,
		to.Name, booking.ID, booking.CheckIn.Format(domain.DateFormat), booking.CheckOut.Format(domain.DateFormat),
		booking.NumGuests, booking.TotalAmount)
	s.send(ctx, KindAccommodationCreated, to, subject, body)
}

// AccommodationBookingDecided уведомление о решении сотрудника
func (s *Service) AccommodationBookingDecided(ctx context.Context, to Recipient, booking *domain.AccommodationBooking) {
	switch booking.Status {
	case domain.AccommodationConfirmed:
		subject := s.catalog.Text(translations.KeyAccommodationConfirmedSubject, to.Language)
		body := s.catalog.Textf(translations.KeyAccommodationConfirmedBody, to.Language, to.Name, booking.ID)
		s.send(ctx, KindAccommodationConfirmed, to, subject, body)
	case domain.AccommodationDeclined:
		subject := s.catalog.Text(translations.KeyAccommodationDeclinedSubject, to.Language)
		body := s.catalog.Textf(translations.KeyAccommodationDeclinedBody, to.Language, to.Name, booking.ID)
		s.send(ctx, KindAccommodationDeclined, to, subject, body)
	default:
		s.logger.Warn("Notifications: no decision message for booking id=%d status=%s", booking.ID, booking.Status)
	}
}

// AccommodationBookingCancelled уведомление об отмене размещения
func (s *Service) AccommodationBookingCancelled(ctx context.Context, to Recipient, booking *domain.AccommodationBooking, reason string) {
	subject := s.catalog.Text(translations.KeyAccommodationCancelledSubject, to.Language)
	body := s.catalog.Textf(translations.KeyAccommodationCancelledBody, to.Language, to.Name, booking.ID, reason)
	s.send(ctx, KindAccommodationCancelled, to, subject, body)
}

// CompanionRequestReceived уведомление получателю заявки в компаньоны
func (s *Service) CompanionRequestReceived(ctx context.Context, to Recipient, senderName string) {
	subject := s.catalog.Text(translations.KeyCompanionRequestSubject, to.Language)
	body := s.catalog.Textf(translations.KeyCompanionRequestBody, to.Language, to.Name, senderName)
	s.send(ctx, KindCompanionRequest, to, subject, body)
}

func (s *Service) send(ctx context.Context, kind string, to Recipient, subject, body string) {
	if err := s.sender.Send(ctx, kind, to.Email, subject, body); err != nil {
		s.logger.Error("Notifications: failed to send %s to %s: %v", kind, to.Email, err)
	}
}
