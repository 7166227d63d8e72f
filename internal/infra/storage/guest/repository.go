package guest

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

// Repository репозиторий гостей и их компаньонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var guestColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"preferred_language",
	"made_by",
	"linked_guest_id",
	"group_name",
	"created_at",
	"updated_at",
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guestColumns...).
		From("guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	guest, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guest: %w", ErrScanRow, err)
	}

	return guest, nil
}

// ListCompanions получает компаньонов владельца
func (r *Repository) ListCompanions(ctx context.Context, ownerID int64) ([]*domain.Guest, error) {
	return r.list(ctx, "ListCompanions", squirrel.Eq{"made_by": ownerID})
}

// ListAllCompanions получает все записи компаньонов (для пересборки графа дружбы)
func (r *Repository) ListAllCompanions(ctx context.Context) ([]*domain.Guest, error) {
	return r.list(ctx, "ListAllCompanions", squirrel.NotEq{"made_by": nil})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guestColumns...).
		From("guests").
		Where(where).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan guest: %w", ErrScanRow, op, err)
		}
		guests = append(guests, guest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %w", ErrScanRow, op, err)
	}

	return guests, nil
}

// CountOwnedCompanions сколько из ids являются компаньонами ownerID
func (r *Repository) CountOwnedCompanions(ctx context.Context, ownerID int64, ids []int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("guests").
		Where(squirrel.Eq{"made_by": ownerID, "id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOwnedCompanions - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOwnedCompanions - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// FindMirror ищет компаньона владельца, отражающего учетную запись linkedGuestID
func (r *Repository) FindMirror(ctx context.Context, ownerID, linkedGuestID int64) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guestColumns...).
		From("guests").
		Where(squirrel.Eq{"made_by": ownerID, "linked_guest_id": linkedGuestID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindMirror - build select query: %w", ErrBuildQuery, err)
	}

	guest, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindMirror - scan guest: %w", ErrScanRow, err)
	}

	return guest, nil
}

// CreateCompanion сохраняет запись компаньона
func (r *Repository) CreateCompanion(ctx context.Context, companion *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns(
			"first_name",
			"last_name",
			"email",
			"phone",
			"preferred_language",
			"made_by",
			"linked_guest_id",
			"group_name",
		).
		Values(
			companion.FirstName,
			companion.LastName,
			companion.Email,
			companion.Phone,
			companion.Language(),
			companion.MadeBy,
			companion.LinkedGuestID,
			companion.GroupName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCompanion - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&companion.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCompanion - execute insert: %w", ErrExecQuery, err)
	}

	companion.CreatedAt = createdAt.Time
	companion.UpdatedAt = updatedAt.Time

	return companion, nil
}

// UpdateGroup меняет метку группы компаньона
func (r *Repository) UpdateGroup(ctx context.Context, id int64, groupName *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guests").
		Set("group_name", groupName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateGroup - build update query: %w", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateGroup", query, args)
}

// Delete удаляет запись компаньона
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guests").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"made_by": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Delete", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuest(row rowScanner) (*domain.Guest, error) {
	var g domain.Guest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&g.ID,
		&g.FirstName,
		&g.LastName,
		&g.Email,
		&g.Phone,
		&g.PreferredLanguage,
		&g.MadeBy,
		&g.LinkedGuestID,
		&g.GroupName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return &g, nil
}
