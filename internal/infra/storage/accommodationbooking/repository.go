package accommodationbooking

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

// Repository репозиторий бронирований размещения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований размещения
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"guest_id",
	"accommodation_id",
	"room_id",
	"check_in",
	"check_out",
	"num_guests",
	"status",
	"total_amount",
	"amount_paid",
	"payment_status",
	"contact_name",
	"contact_email",
	"contact_phone",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create сохраняет бронирование в статусе pending
func (r *Repository) Create(ctx context.Context, booking *domain.AccommodationBooking) (*domain.AccommodationBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("accommodation_bookings").
		Columns(
			"guest_id",
			"accommodation_id",
			"room_id",
			"check_in",
			"check_out",
			"num_guests",
			"status",
			"total_amount",
			"amount_paid",
			"payment_status",
			"contact_name",
			"contact_email",
			"contact_phone",
		).
		Values(
			booking.GuestID,
			booking.AccommodationID,
			booking.RoomID,
			booking.CheckIn,
			booking.CheckOut,
			booking.NumGuests,
			booking.Status,
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

	return booking, nil
}

// GetByID получает бронирование по ID (FOR UPDATE внутри транзакции)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AccommodationBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("accommodation_bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
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

	return booking, nil
}

// ListByGuest получает бронирования размещения гостя, ближайшие заезды первыми
func (r *Repository) ListByGuest(ctx context.Context, guestID int64) ([]*domain.AccommodationBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("accommodation_bookings").
		Where(squirrel.Eq{"guest_id": guestID}).
		OrderBy("check_in DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuest - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuest - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.AccommodationBooking, 0)
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

// UpdateStatus переводит бронирование из from в to (compare-and-set по статусу)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.AccommodationBookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accommodation_bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование из статуса from с причиной и временем отмены
func (r *Repository) Cancel(ctx context.Context, id int64, from domain.AccommodationBookingStatus, reason string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("accommodation_bookings").
		Set("status", domain.AccommodationCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %w", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Cancel", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.AccommodationBooking, error) {
	var b domain.AccommodationBooking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.GuestID,
		&b.AccommodationID,
		&b.RoomID,
		&b.CheckIn,
		&b.CheckOut,
		&b.NumGuests,
		&b.Status,
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
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
