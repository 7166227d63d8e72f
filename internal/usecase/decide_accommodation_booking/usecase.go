package decide_accommodation_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	bookingRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/accommodationbooking"
	roomRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/room"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
	"github.com/m04kA/tourism-booking-service/pkg/metrics"
	"github.com/m04kA/tourism-booking-service/pkg/ptr"
)

// UseCase use case для подтверждения или отклонения заявки на размещение
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	guestRepo   GuestRepository
	notifier    Notifier
	metrics     MetricsRecorder
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	guestRepo GuestRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		notifier:    notifier,
		metrics:     metrics,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute применяет решение сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideAccommodationBooking: booking=%d, decision=%s, actor=%d (%s)",
		req.BookingID, req.Decision, req.Actor.UserID, req.Actor.Role)

	// 1. Валидация и проверка прав
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DecideAccommodationBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		booking      *domain.AccommodationBooking
		availability *int
	)

	// 2. Решение и резервирование мест в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DecideAccommodationBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DecideAccommodationBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.2. Решение принимается только по ожидающей заявке
		if err := b.CanDecide(); err != nil {
			uc.logger.Warn("DecideAccommodationBooking: booking id=%d is %s", b.ID, b.Status)
			return ErrInvalidTransition
		}

		target := domain.AccommodationDeclined

		// 2.3. Подтверждение занимает места в номере
		if req.Decision == DecisionConfirm {
			left, err := uc.reserveRoom(txCtx, b)
			if err != nil {
				return err
			}
			availability = ptr.Ptr(left)
			target = domain.AccommodationConfirmed
		}

		// 2.4. Сохраняем новый статус (compare-and-set)
		if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.AccommodationPending, target); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				uc.logger.Warn("DecideAccommodationBooking: booking id=%d changed concurrently", b.ID)
				return ErrInvalidTransition
			}
			uc.logger.Error("DecideAccommodationBooking: failed to update booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		b.Status = target
		booking = b
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInsufficientCapacity) {
			uc.metrics.RecordBooking(metrics.KindAccommodation, metrics.OutcomeRejectedCapacity)
		}
		return nil, err
	}

	outcome := metrics.OutcomeDeclined
	if booking.Status == domain.AccommodationConfirmed {
		outcome = metrics.OutcomeConfirmed
	}
	uc.metrics.RecordBooking(metrics.KindAccommodation, outcome)
	uc.logger.Info("DecideAccommodationBooking: booking id=%d is now %s", booking.ID, booking.Status)

	// 3. Уведомление после коммита
	guest, err := uc.guestRepo.GetByID(ctx, booking.GuestID)
	if err != nil {
		uc.logger.Warn("DecideAccommodationBooking: failed to load guest id=%d for notification: %v", booking.GuestID, err)
		guest = nil
	}
	uc.notifier.AccommodationBookingDecided(ctx,
		notifications.ContactRecipient(booking.ContactName, booking.ContactEmail, guest), booking)

	return &Response{
		ID:               booking.ID,
		Status:           string(booking.Status),
		RoomID:           booking.RoomID,
		RoomAvailability: availability,
	}, nil
}

// reserveRoom занимает места под бронирование и возвращает остаток свободных мест
func (uc *UseCase) reserveRoom(ctx context.Context, b *domain.AccommodationBooking) (int, error) {
	room, err := uc.roomRepo.GetByID(ctx, b.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("DecideAccommodationBooking: room id=%d not found", b.RoomID)
			return 0, ErrRoomNotFound
		}
		uc.logger.Error("DecideAccommodationBooking: failed to get room id=%d: %v", b.RoomID, err)
		return 0, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	if !room.IsBookable() {
		uc.logger.Warn("DecideAccommodationBooking: room id=%d is %s", room.ID, room.Status)
		return 0, ErrRoomNotBookable
	}

	reserved, err := room.Reserve(b.NumGuests)
	if err != nil {
		uc.logger.Warn("DecideAccommodationBooking: room id=%d has %d places, booking id=%d needs %d",
			room.ID, room.CurrentAvailability, b.ID, b.NumGuests)
		return 0, ErrInsufficientCapacity
	}

	if err := uc.roomRepo.Reserve(ctx, room.ID, b.NumGuests); err != nil {
		if errors.Is(err, roomRepo.ErrInsufficientAvailability) {
			uc.logger.Warn("DecideAccommodationBooking: room id=%d ran out of places", room.ID)
			return 0, ErrInsufficientCapacity
		}
		uc.logger.Error("DecideAccommodationBooking: failed to reserve room id=%d: %v", room.ID, err)
		return 0, fmt.Errorf("%w: failed to reserve room: %w", ErrInternal, err)
	}

	return reserved.CurrentAvailability, nil
}

// Confirm подтверждает заявку и занимает места в номере
func (uc *UseCase) Confirm(ctx context.Context, bookingID int64, actor domain.Actor) (*Response, error) {
	return uc.Execute(ctx, &Request{BookingID: bookingID, Actor: actor, Decision: DecisionConfirm})
}

// Decline отклоняет заявку
func (uc *UseCase) Decline(ctx context.Context, bookingID int64, actor domain.Actor) (*Response, error) {
	return uc.Execute(ctx, &Request{BookingID: bookingID, Actor: actor, Decision: DecisionDecline})
}
