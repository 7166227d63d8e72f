package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/pkg/dbmetrics"
	"github.com/m04kA/tourism-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий номеров размещения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var roomColumns = []string{
	"id",
	"accommodation_id",
	"name",
	"person_limit",
	"current_availability",
	"price_per_night",
	"status",
}

// GetByID получает номер по ID (FOR UPDATE внутри транзакции)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.AccommodationID,
		&room.Name,
		&room.PersonLimit,
		&room.CurrentAvailability,
		&room.PricePerNight,
		&room.Status,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %w", ErrScanRow, err)
	}

	return &room, nil
}

// Reserve атомарно уменьшает current_availability на guestCount
// Номер на обслуживании не бронируется; при нуле свободных мест статус становится OCCUPIED
func (r *Repository) Reserve(ctx context.Context, id int64, guestCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("current_availability", squirrel.Expr("current_availability - ?", guestCount)).
		Set("status", squirrel.Expr("CASE WHEN current_availability - ? <= 0 THEN ? ELSE status END", guestCount, domain.RoomOccupied)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_availability >= ?", guestCount)).
		Where(squirrel.NotEq{"status": domain.RoomMaintenance}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInsufficientAvailability
	}

	return nil
}

// Release возвращает guestCount мест, не превышая person_limit
func (r *Repository) Release(ctx context.Context, id int64, guestCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("current_availability", squirrel.Expr("LEAST(person_limit, GREATEST(current_availability + ?, 0))", guestCount)).
		Set("status", squirrel.Expr("CASE WHEN status = ? AND current_availability + ? > 0 THEN ? ELSE status END",
			domain.RoomOccupied, guestCount, domain.RoomAvailable)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}
