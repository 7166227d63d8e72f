package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	accommodationRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/accommodationbooking"
	tourRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/tourbooking"
	"github.com/m04kA/tourism-booking-service/internal/service/bookings/models"
)

// Service сервис чтения бронирований
// Статус бронирования тура каждый раз вычисляется по времени расписания
type Service struct {
	tourRepo          TourBookingRepository
	accommodationRepo AccommodationBookingRepository
	timeProvider      TimeProvider
	logger            Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	tourRepo TourBookingRepository,
	accommodationRepo AccommodationBookingRepository,
	logger Logger,
) *Service {
	return &Service{
		tourRepo:          tourRepo,
		accommodationRepo: accommodationRepo,
		timeProvider:      RealTimeProvider{},
		logger:            logger,
	}
}

// GetTourBooking получает бронирование тура
// Видеть бронирование может владелец или сотрудник
func (s *Service) GetTourBooking(ctx context.Context, id int64, actor domain.Actor) (*models.TourBookingResponse, error) {
	s.logger.Info("GetTourBooking: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrBookingNotFound) {
			s.logger.Warn("GetTourBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetTourBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetTourBooking - repository error: %w", ErrInternal, err)
	}

	if !actor.CanManageBooking(booking.GuestID) {
		s.logger.Warn("GetTourBooking: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainTourBooking(booking, s.timeProvider.Now()), nil
}

// GetAccommodationBooking получает бронирование проживания
func (s *Service) GetAccommodationBooking(ctx context.Context, id int64, actor domain.Actor) (*models.AccommodationBookingResponse, error) {
	s.logger.Info("GetAccommodationBooking: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.accommodationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, accommodationRepo.ErrBookingNotFound) {
			s.logger.Warn("GetAccommodationBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetAccommodationBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetAccommodationBooking - repository error: %w", ErrInternal, err)
	}

	if !actor.CanManageBooking(booking.GuestID) {
		s.logger.Warn("GetAccommodationBooking: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAccommodationBooking(booking), nil
}

// ListGuestBookings получает историю бронирований гостя: туры и проживание
func (s *Service) ListGuestBookings(ctx context.Context, guestID int64, actor domain.Actor) (*models.GuestBookingsResponse, error) {
	s.logger.Info("ListGuestBookings: fetching bookings for guest=%d by user=%d", guestID, actor.UserID)

	if !actor.CanManageBooking(guestID) {
		s.logger.Warn("ListGuestBookings: access denied for user=%d to guest=%d", actor.UserID, guestID)
		return nil, ErrAccessDenied
	}

	tours, err := s.tourRepo.ListByGuest(ctx, guestID)
	if err != nil {
		s.logger.Error("ListGuestBookings: failed to list tour bookings for guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: ListGuestBookings - tour bookings: %w", ErrInternal, err)
	}

	stays, err := s.accommodationRepo.ListByGuest(ctx, guestID)
	if err != nil {
		s.logger.Error("ListGuestBookings: failed to list accommodation bookings for guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: ListGuestBookings - accommodation bookings: %w", ErrInternal, err)
	}

	s.logger.Info("ListGuestBookings: fetched %d tour and %d accommodation bookings for guest=%d",
		len(tours), len(stays), guestID)

	return &models.GuestBookingsResponse{
		TourBookings:          models.FromDomainTourBookingList(tours, s.timeProvider.Now()),
		AccommodationBookings: models.FromDomainAccommodationBookingList(stays),
	}, nil
}
