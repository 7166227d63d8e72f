package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	accommodationRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/accommodationbooking"
	tourBookingRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/tourbooking"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
	"github.com/m04kA/tourism-booking-service/pkg/metrics"
)

// UseCase use case для отмены бронирований туров и размещения
// Отмена всегда освобождает места, которые занимало бронирование
type UseCase struct {
	tourRepo          TourBookingRepository
	accommodationRepo AccommodationBookingRepository
	scheduleRepo      ScheduleRepository
	roomRepo          RoomRepository
	guestRepo         GuestRepository
	notifier          Notifier
	metrics           MetricsRecorder
	txManager         TransactionManager
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourBookingRepository,
	accommodationRepo AccommodationBookingRepository,
	scheduleRepo ScheduleRepository,
	roomRepo RoomRepository,
	guestRepo GuestRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:          tourRepo,
		accommodationRepo: accommodationRepo,
		scheduleRepo:      scheduleRepo,
		roomRepo:          roomRepo,
		guestRepo:         guestRepo,
		notifier:          notifier,
		metrics:           metrics,
		txManager:         txManager,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// ExecuteTour отменяет бронирование тура
func (uc *UseCase) ExecuteTour(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelTourBooking: booking=%d, actor=%d (%s)", req.BookingID, req.Actor.UserID, req.Actor.Role)

	// 1. Валидация входных данных
	reason, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CancelTourBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var booking *domain.TourBooking

	// 2. Смена статуса и возврат мест в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		b, err := uc.tourRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, tourBookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelTourBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelTourBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.2. Отменить может владелец или сотрудник
		if !req.Actor.CanManageBooking(b.GuestID) {
			uc.logger.Warn("CancelTourBooking: actor=%d is not allowed to cancel booking id=%d of guest=%d",
				req.Actor.UserID, b.ID, b.GuestID)
			return ErrPermissionDenied
		}

		// 2.3. Проверяем переход по текущему (вычисленному) статусу
		if err := b.CanCancel(now); err != nil {
			uc.logger.Warn("CancelTourBooking: booking id=%d is %s", b.ID, b.CurrentStatus(now))
			return ErrInvalidTransition
		}

		// 2.4. Возвращаем места в расписание
		if err := uc.scheduleRepo.Release(txCtx, b.ScheduleID, b.TotalGuests()); err != nil {
			uc.logger.Error("CancelTourBooking: failed to release %d slots on schedule id=%d: %v",
				b.TotalGuests(), b.ScheduleID, err)
			return fmt.Errorf("%w: failed to release slots: %w", ErrInternal, err)
		}

		// 2.5. Сохраняем отмену
		if err := uc.tourRepo.Cancel(txCtx, b.ID, reason, now); err != nil {
			if errors.Is(err, tourBookingRepo.ErrCannotCancel) {
				uc.logger.Warn("CancelTourBooking: booking id=%d changed concurrently", b.ID)
				return ErrInvalidTransition
			}
			uc.logger.Error("CancelTourBooking: failed to cancel booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %w", ErrInternal, err)
		}

		b.Status = domain.TourBookingCancelled
		b.CancellationReason = &reason
		b.CancelledAt = &now
		booking = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordBooking(metrics.KindTour, metrics.OutcomeCancelled)
	uc.logger.Info("CancelTourBooking: booking id=%d cancelled, released %d slots on schedule id=%d",
		booking.ID, booking.TotalGuests(), booking.ScheduleID)

	// 3. Уведомление после коммита
	uc.notifyTour(ctx, booking, reason)

	return &Response{
		ID:                 booking.ID,
		Status:             string(booking.Status),
		CancellationReason: reason,
		CancelledAt:        now,
		ReleasedSlots:      booking.TotalGuests(),
	}, nil
}

// ExecuteAccommodation отменяет бронирование размещения
// Места в номере возвращаются, только если бронирование было подтверждено
func (uc *UseCase) ExecuteAccommodation(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAccommodationBooking: booking=%d, actor=%d (%s)", req.BookingID, req.Actor.UserID, req.Actor.Role)

	// 1. Валидация входных данных
	reason, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CancelAccommodationBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var (
		booking  *domain.AccommodationBooking
		released int
	)

	// 2. Смена статуса и возврат мест в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		b, err := uc.accommodationRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, accommodationRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelAccommodationBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelAccommodationBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.2. Отменить может владелец или сотрудник
		if !req.Actor.CanManageBooking(b.GuestID) {
			uc.logger.Warn("CancelAccommodationBooking: actor=%d is not allowed to cancel booking id=%d of guest=%d",
				req.Actor.UserID, b.ID, b.GuestID)
			return ErrPermissionDenied
		}

		// 2.3. Проверяем переход
		if err := b.CanCancel(); err != nil {
			uc.logger.Warn("CancelAccommodationBooking: booking id=%d is %s", b.ID, b.Status)
			return ErrInvalidTransition
		}

		// 2.4. Подтвержденное бронирование занимает места в номере
		if b.HoldsCapacity() {
			if err := uc.roomRepo.Release(txCtx, b.RoomID, b.NumGuests); err != nil {
				uc.logger.Error("CancelAccommodationBooking: failed to release %d places in room id=%d: %v",
					b.NumGuests, b.RoomID, err)
				return fmt.Errorf("%w: failed to release room: %w", ErrInternal, err)
			}
			released = b.NumGuests
		}

		// 2.5. Сохраняем отмену (compare-and-set по текущему статусу)
		if err := uc.accommodationRepo.Cancel(txCtx, b.ID, b.Status, reason, now); err != nil {
			if errors.Is(err, accommodationRepo.ErrStatusConflict) {
				uc.logger.Warn("CancelAccommodationBooking: booking id=%d changed concurrently", b.ID)
				return ErrInvalidTransition
			}
			uc.logger.Error("CancelAccommodationBooking: failed to cancel booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %w", ErrInternal, err)
		}

		b.Status = domain.AccommodationCancelled
		b.CancellationReason = &reason
		b.CancelledAt = &now
		booking = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordBooking(metrics.KindAccommodation, metrics.OutcomeCancelled)
	uc.logger.Info("CancelAccommodationBooking: booking id=%d cancelled, released %d places in room id=%d",
		booking.ID, released, booking.RoomID)

	// 3. Уведомление после коммита
	guest := uc.loadGuest(ctx, booking.GuestID)
	uc.notifier.AccommodationBookingCancelled(ctx,
		notifications.ContactRecipient(booking.ContactName, booking.ContactEmail, guest), booking, reason)

	return &Response{
		ID:                 booking.ID,
		Status:             string(booking.Status),
		CancellationReason: reason,
		CancelledAt:        now,
		ReleasedSlots:      released,
	}, nil
}

func (uc *UseCase) notifyTour(ctx context.Context, booking *domain.TourBooking, reason string) {
	guest := uc.loadGuest(ctx, booking.GuestID)
	lang := domain.DefaultLanguage
	if guest != nil {
		lang = guest.Language()
	}

	tourName := fmt.Sprintf("#%d", booking.TourID)
	if tour, err := uc.scheduleRepo.GetTour(ctx, booking.TourID); err != nil {
		uc.logger.Warn("CancelTourBooking: failed to load tour id=%d for notification: %v", booking.TourID, err)
	} else {
		tourName = tour.DisplayName(lang)
	}

	uc.notifier.TourBookingCancelled(ctx,
		notifications.ContactRecipient(booking.ContactName, booking.ContactEmail, guest), booking, tourName, reason)
}

// loadGuest нужен только для языка уведомления, поэтому ошибка не прерывает операцию
func (uc *UseCase) loadGuest(ctx context.Context, id int64) *domain.Guest {
	guest, err := uc.guestRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warn("CancelBooking: failed to load guest id=%d for notification: %v", id, err)
		return nil
	}
	return guest
}
