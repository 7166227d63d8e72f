package tourbooking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/pkg/dbmetrics"
	"github.com/m04kA/tourism-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий бронирований туров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"tb.id",
	"tb.guest_id",
	"tb.tour_id",
	"tb.schedule_id",
	"tb.status",
	"tb.num_adults",
	"tb.num_children",
	"tb.base_price",
	"tb.additional_fees",
	"tb.discounts",
	"tb.total_amount",
	"tb.amount_paid",
	"tb.payment_status",
	"tb.contact_name",
	"tb.contact_email",
	"tb.contact_phone",
	"tb.cancellation_reason",
	"tb.cancelled_at",
	"tb.created_at",
	"tb.updated_at",
	"ts.start_time",
	"ts.end_time",
}

// terminalStatuses статусы, из которых отмена невозможна
var terminalStatuses = []string{
	string(domain.TourBookingCompleted),
	string(domain.TourBookingCancelled),
	string(domain.TourBookingDeclined),
}

// Create сохраняет бронирование и привязывает к нему компаньонов
// Вызывается внутри транзакции вместе с резервированием мест
func (r *Repository) Create(ctx context.Context, booking *domain.TourBooking) (*domain.TourBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tour_bookings").
		Columns(
			"guest_id",
			"tour_id",
			"schedule_id",
			"status",
			"num_adults",
			"num_children",
			"base_price",
			"additional_fees",
			"discounts",
			"total_amount",
			"amount_paid",
			"payment_status",
			"contact_name",
			"contact_email",
			"contact_phone",
		).
		Values(
			booking.GuestID,
			booking.TourID,
			booking.ScheduleID,
			booking.Status,
			booking.NumAdults,
			booking.NumChildren,
			booking.BasePrice,
			booking.AdditionalFees,
			booking.Discounts,
			booking.TotalAmount,
			booking.AmountPaid,
			booking.PaymentStatus,
			booking.ContactName,
			booking.ContactEmail,
			booking.ContactPhone,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if len(booking.CompanionIDs) > 0 {
		if err := r.linkCompanions(ctx, executor, booking.ID, booking.CompanionIDs); err != nil {
			return nil, err
		}
	}

	return booking, nil
}

func (r *Repository) linkCompanions(ctx context.Context, executor DBExecutor, bookingID int64, companionIDs []int64) error {
	insertBuilder := psqlbuilder.Insert("tour_booking_companions").
		Columns("booking_id", "companion_id")

	for _, companionID := range companionIDs {
		insertBuilder = insertBuilder.Values(bookingID, companionID)
	}

	query, args, err := insertBuilder.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: linkCompanions - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: linkCompanions - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование вместе с границами расписания
// Внутри транзакции строка бронирования блокируется
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TourBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("tour_bookings tb").
		Join("tour_schedules ts ON ts.id = tb.schedule_id").
		Where(squirrel.Eq{"tb.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF tb")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	companionIDs, err := r.GetCompanionIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.CompanionIDs = companionIDs

	return booking, nil
}

// ListByGuest получает бронирования гостя, новые первыми
func (r *Repository) ListByGuest(ctx context.Context, guestID int64) ([]*domain.TourBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("tour_bookings tb").
		Join("tour_schedules ts ON ts.id = tb.schedule_id").
		Where(squirrel.Eq{"tb.guest_id": guestID}).
		OrderBy("ts.start_time DESC", "tb.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuest - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuest - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.TourBooking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByGuest - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByGuest - iterate rows: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// Cancel переводит бронирование в cancelled, если оно еще не в терминальном статусе
func (r *Repository) Cancel(ctx context.Context, id int64, reason string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tour_bookings").
		Set("status", domain.TourBookingCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": terminalStatuses}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// GetCompanionIDs получает ID компаньонов, привязанных к бронированию
func (r *Repository) GetCompanionIDs(ctx context.Context, bookingID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("companion_id").
		From("tour_booking_companions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("companion_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCompanionIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompanionIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetCompanionIDs - scan id: %w", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCompanionIDs - iterate rows: %w", ErrScanRow, err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.TourBooking, error) {
	var b domain.TourBooking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.GuestID,
		&b.TourID,
		&b.ScheduleID,
		&b.Status,
		&b.NumAdults,
		&b.NumChildren,
		&b.BasePrice,
		&b.AdditionalFees,
		&b.Discounts,
		&b.TotalAmount,
		&b.AmountPaid,
		&b.PaymentStatus,
		&b.ContactName,
		&b.ContactEmail,
		&b.ContactPhone,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
		&b.ScheduleStart,
		&b.ScheduleEnd,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
