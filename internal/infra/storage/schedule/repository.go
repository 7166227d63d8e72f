package schedule

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

// Repository репозиторий расписаний туров и их счетчиков мест
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var scheduleColumns = []string{
	"id",
	"tour_id",
	"start_time",
	"end_time",
	"price",
	"total_slots",
	"slots_booked",
	"duration_days",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// GetByID получает расписание по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до конца транзакции
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TourSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("tour_schedules").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var s domain.TourSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.TourID,
		&s.StartTime,
		&s.EndTime,
		&s.Price,
		&s.TotalSlots,
		&s.SlotsBooked,
		&s.DurationDays,
		&s.Status,
		&s.CancellationReason,
		&s.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %w", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Reserve атомарно занимает guestCount мест
// Условие в WHERE гарантирует slots_booked <= total_slots даже без предварительной блокировки
func (r *Repository) Reserve(ctx context.Context, id int64, guestCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tour_schedules").
		Set("slots_booked", squirrel.Expr("slots_booked + ?", guestCount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("slots_booked + ? <= total_slots", guestCount)).
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
		return ErrInsufficientSlots
	}

	return nil
}

// Release возвращает guestCount мест; slots_booked не опускается ниже нуля
func (r *Repository) Release(ctx context.Context, id int64, guestCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tour_schedules").
		Set("slots_booked", squirrel.Expr("GREATEST(slots_booked - ?, 0)", guestCount)).
		Set("updated_at", squirrel.Expr("NOW()")).
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
		return ErrScheduleNotFound
	}

	return nil
}

// GetTour получает тур вместе с переводами названия
func (r *Repository) GetTour(ctx context.Context, tourID int64) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("tours").
		Where(squirrel.Eq{"id": tourID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTour - build select query: %w", ErrBuildQuery, err)
	}

	var tour domain.Tour
	err = executor.QueryRowContext(ctx, query, args...).Scan(&tour.ID, &tour.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTour - scan tour: %w", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Select("language", "name").
		From("tour_translations").
		Where(squirrel.Eq{"tour_id": tourID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTour - build translations query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTour - execute translations query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	tour.Names = make(domain.Localized)
	for rows.Next() {
		var lang, name string
		if err := rows.Scan(&lang, &name); err != nil {
			return nil, fmt.Errorf("%w: GetTour - scan translation: %w", ErrScanRow, err)
		}
		tour.Names[lang] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTour - iterate translations: %w", ErrScanRow, err)
	}

	return &tour, nil
}
