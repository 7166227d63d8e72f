package create_accommodation_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	guestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/guest"
	roomRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/room"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
	"github.com/m04kA/tourism-booking-service/pkg/metrics"
)

// UseCase use case для создания заявки на размещение
// Вместимость номера только проверяется; места занимаются при подтверждении сотрудником
type UseCase struct {
	guestRepo    GuestRepository
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	notifier     Notifier
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	guestRepo GuestRepository,
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки на размещение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAccommodationBooking: guest=%d, room=%d, check-in=%s, check-out=%s, guests=%d",
		req.GuestID, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.NumGuests)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAccommodationBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем гостя
	guest, err := uc.guestRepo.GetByID(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			uc.logger.Warn("CreateAccommodationBooking: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Error("CreateAccommodationBooking: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %w", ErrInternal, err)
	}

	// 3. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateAccommodationBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateAccommodationBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	// 4. Проверяем номер без резервирования
	if !room.IsBookable() {
		uc.logger.Warn("CreateAccommodationBooking: room id=%d is %s", room.ID, room.Status)
		return nil, ErrRoomNotBookable
	}
	if err := room.CheckAvailability(req.NumGuests); err != nil {
		uc.logger.Warn("CreateAccommodationBooking: room id=%d has %d/%d places, requested %d",
			room.ID, room.CurrentAvailability, room.PersonLimit, req.NumGuests)
		uc.metrics.RecordBooking(metrics.KindAccommodation, metrics.OutcomeRejectedCapacity)
		return nil, ErrInsufficientCapacity
	}

	// 5. Сохраняем заявку в статусе pending
	booking := &domain.AccommodationBooking{
		GuestID:         guest.ID,
		AccommodationID: room.AccommodationID,
		RoomID:          room.ID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		NumGuests:       req.NumGuests,
		Status:          domain.AccommodationPending,
		TotalAmount:     domain.CalculateAccommodationTotal(room.PricePerNight, req.CheckIn, req.CheckOut),
		PaymentStatus:   domain.PaymentUnpaid,
		ContactName:     contactOrDefault(req.ContactName, guest.FullName()),
		ContactEmail:    contactOrDefault(req.ContactEmail, guest.Email),
		ContactPhone:    contactOrDefault(req.ContactPhone, guest.Phone),
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateAccommodationBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
	}

	uc.metrics.RecordBooking(metrics.KindAccommodation, metrics.OutcomeCreated)
	uc.logger.Info("CreateAccommodationBooking: successfully created booking id=%d, total=%.2f", created.ID, created.TotalAmount)

	// 6. Уведомление не влияет на результат
	uc.notifier.AccommodationBookingCreated(ctx,
		notifications.ContactRecipient(created.ContactName, created.ContactEmail, guest), created)

	return &Response{
		ID:              created.ID,
		GuestID:         created.GuestID,
		AccommodationID: created.AccommodationID,
		RoomID:          created.RoomID,
		CheckIn:         created.CheckIn,
		CheckOut:        created.CheckOut,
		Nights:          created.Nights(),
		NumGuests:       created.NumGuests,
		Status:          string(created.Status),
		TotalAmount:     created.TotalAmount,
		PaymentStatus:   string(created.PaymentStatus),
		ContactName:     created.ContactName,
		ContactEmail:    created.ContactEmail,
		ContactPhone:    created.ContactPhone,
		CreatedAt:       created.CreatedAt,
	}, nil
}
