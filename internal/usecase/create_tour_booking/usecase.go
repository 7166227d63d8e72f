package create_tour_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	guestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/guest"
	scheduleRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/schedule"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
	"github.com/m04kA/tourism-booking-service/pkg/metrics"
)

// UseCase use case для бронирования тура
type UseCase struct {
	guestRepo    GuestRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	notifier     Notifier
	metrics      MetricsRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	guestRepo GuestRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		guestRepo:    guestRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования тура
// Резервирование мест и создание бронирования выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTourBooking: guest=%d, schedule=%d, adults=%d, children=%d, companions=%d",
		req.GuestID, req.ScheduleID, req.NumAdults, req.NumChildren, len(req.CompanionIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTourBooking: validation failed: %v", err)
		return nil, err
	}

	guestCount := req.NumAdults + req.NumChildren

	// 2. Получаем гостя (снимок контактов)
	guest, err := uc.guestRepo.GetByID(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			uc.logger.Warn("CreateTourBooking: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Error("CreateTourBooking: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %w", ErrInternal, err)
	}

	// 3. Все компаньоны должны принадлежать гостю
	if len(req.CompanionIDs) > 0 {
		owned, err := uc.guestRepo.CountOwnedCompanions(ctx, req.GuestID, req.CompanionIDs)
		if err != nil {
			uc.logger.Error("CreateTourBooking: failed to check companions of guest id=%d: %v", req.GuestID, err)
			return nil, fmt.Errorf("%w: failed to check companions: %w", ErrInternal, err)
		}
		if owned != len(req.CompanionIDs) {
			uc.logger.Warn("CreateTourBooking: guest id=%d owns %d of %d companions", req.GuestID, owned, len(req.CompanionIDs))
			return nil, ErrCompanionNotOwned
		}
	}

	now := uc.timeProvider.Now()

	var (
		result         *domain.TourBooking
		slotsRemaining int
	)

	// 4. Резервируем места и сохраняем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем расписание с блокировкой строки (FOR UPDATE)
		schedule, err := uc.scheduleRepo.GetByID(txCtx, req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateTourBooking: schedule id=%d not found", req.ScheduleID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("CreateTourBooking: failed to get schedule id=%d: %v", req.ScheduleID, err)
			return fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
		}

		// 4.2. Отмененные и завершенные расписания не бронируются
		if !schedule.IsBookable(now) {
			uc.logger.Warn("CreateTourBooking: schedule id=%d is %s", schedule.ID, schedule.CurrentStatus(now))
			return ErrScheduleNotBookable
		}

		// 4.3. Считаем итоговую сумму до записи
		total, err := domain.CalculateTourTotal(schedule.Price, guestCount, req.AdditionalFees, req.Discounts)
		if err != nil {
			uc.logger.Warn("CreateTourBooking: invalid amounts for schedule id=%d: %v", schedule.ID, err)
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		// 4.4. Проверяем вместимость по заблокированной строке
		capacity, err := schedule.Capacity().Reserve(guestCount)
		if err != nil {
			uc.logger.Warn("CreateTourBooking: schedule id=%d has %d/%d slots available, requested %d",
				schedule.ID, schedule.SlotsAvailable(), schedule.TotalSlots, guestCount)
			return ErrInsufficientCapacity
		}

		// 4.5. Занимаем места условным UPDATE
		if err := uc.scheduleRepo.Reserve(txCtx, schedule.ID, guestCount); err != nil {
			if errors.Is(err, scheduleRepo.ErrInsufficientSlots) {
				uc.logger.Warn("CreateTourBooking: schedule id=%d ran out of slots", schedule.ID)
				return ErrInsufficientCapacity
			}
			uc.logger.Error("CreateTourBooking: failed to reserve slots on schedule id=%d: %v", schedule.ID, err)
			return fmt.Errorf("%w: failed to reserve slots: %w", ErrInternal, err)
		}

		// 4.6. Создаем бронирование со снимком контактов гостя
		booking := &domain.TourBooking{
			GuestID:        guest.ID,
			TourID:         schedule.TourID,
			ScheduleID:     schedule.ID,
			Status:         domain.TourBookingPending,
			NumAdults:      req.NumAdults,
			NumChildren:    req.NumChildren,
			BasePrice:      schedule.Price,
			AdditionalFees: req.AdditionalFees,
			Discounts:      req.Discounts,
			TotalAmount:    total,
			PaymentStatus:  domain.PaymentUnpaid,
			ContactName:    contactOrDefault(req.ContactName, guest.FullName()),
			ContactEmail:   contactOrDefault(req.ContactEmail, guest.Email),
			ContactPhone:   contactOrDefault(req.ContactPhone, guest.Phone),
			ScheduleStart:  schedule.StartTime,
			ScheduleEnd:    schedule.EndTime,
			CompanionIDs:   req.CompanionIDs,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateTourBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		slotsRemaining = capacity.Available()
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInsufficientCapacity) {
			uc.metrics.RecordBooking(metrics.KindTour, metrics.OutcomeRejectedCapacity)
		}
		return nil, err
	}

	uc.metrics.RecordBooking(metrics.KindTour, metrics.OutcomeCreated)
	uc.logger.Info("CreateTourBooking: successfully created booking id=%d, schedule=%d, slots remaining=%d",
		result.ID, result.ScheduleID, slotsRemaining)

	// 5. Подтверждение отправляется после коммита и не влияет на результат
	uc.notify(ctx, guest, result)

	return toResponse(result, slotsRemaining), nil
}

func (uc *UseCase) notify(ctx context.Context, guest *domain.Guest, booking *domain.TourBooking) {
	tourName := fmt.Sprintf("#%d", booking.TourID)
	tour, err := uc.scheduleRepo.GetTour(ctx, booking.TourID)
	if err != nil {
		uc.logger.Warn("CreateTourBooking: failed to load tour id=%d for notification: %v", booking.TourID, err)
	} else {
		tourName = tour.DisplayName(guest.Language())
	}

	uc.notifier.TourBookingCreated(ctx, notifications.ContactRecipient(booking.ContactName, booking.ContactEmail, guest), booking, tourName)
}

func toResponse(b *domain.TourBooking, slotsRemaining int) *Response {
	return &Response{
		ID:             b.ID,
		GuestID:        b.GuestID,
		TourID:         b.TourID,
		ScheduleID:     b.ScheduleID,
		Status:         string(b.Status),
		NumAdults:      b.NumAdults,
		NumChildren:    b.NumChildren,
		BasePrice:      b.BasePrice,
		AdditionalFees: b.AdditionalFees,
		Discounts:      b.Discounts,
		TotalAmount:    b.TotalAmount,
		PaymentStatus:  string(b.PaymentStatus),
		ContactName:    b.ContactName,
		ContactEmail:   b.ContactEmail,
		ContactPhone:   b.ContactPhone,
		CompanionIDs:   b.CompanionIDs,
		ScheduleStart:  b.ScheduleStart,
		ScheduleEnd:    b.ScheduleEnd,
		SlotsRemaining: slotsRemaining,
		CreatedAt:      b.CreatedAt,
	}
}
