package friendship

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/pkg/dbmetrics"
	"github.com/m04kA/tourism-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий направленных ребер дружбы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дружбы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateIfAbsent создает ребро user -> friend, если его еще нет
// Существующее ребро не перезаписывается; возвращает true, если строка была вставлена
func (r *Repository) CreateIfAbsent(ctx context.Context, userID, friendID int64, groupName string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("friendships").
		Columns("user_id", "friend_id", "group_name").
		Values(userID, friendID, groupName).
		Suffix("ON CONFLICT (user_id, friend_id) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - build insert query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - execute insert: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// DeletePair удаляет оба направления дружбы между a и b
func (r *Repository) DeletePair(ctx context.Context, a, b int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("friendships").
		Where(squirrel.Or{
			squirrel.Eq{"user_id": a, "friend_id": b},
			squirrel.Eq{"user_id": b, "friend_id": a},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeletePair - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeletePair - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeletePair - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Exists проверяет наличие ребра user -> friend
func (r *Repository) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("friendships").
		Where(squirrel.Eq{"user_id": userID, "friend_id": friendID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: Exists - scan count: %w", ErrScanRow, err)
	}

	return count > 0, nil
}

// ListByUser получает исходящие ребра гостя
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Friendship, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "friend_id", "group_name", "created_at").
		From("friendships").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("group_name ASC", "friend_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	friendships := make([]*domain.Friendship, 0)
	for rows.Next() {
		var f domain.Friendship
		var createdAt sql.NullTime
		if err := rows.Scan(&f.UserID, &f.FriendID, &f.GroupName, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan friendship: %w", ErrScanRow, err)
		}
		f.CreatedAt = createdAt.Time
		friendships = append(friendships, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - iterate rows: %w", ErrScanRow, err)
	}

	return friendships, nil
}
