package companionrequest

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

// Repository репозиторий заявок в компаньоны
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var requestColumns = []string{
	"id",
	"sender_id",
	"recipient_id",
	"status",
	"message",
	"group_name",
	"created_at",
	"updated_at",
}

// GetByID получает заявку по ID (FOR UPDATE внутри транзакции)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CompanionRequest, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByPair получает заявку sender -> recipient (FOR UPDATE внутри транзакции)
func (r *Repository) GetByPair(ctx context.Context, senderID, recipientID int64) (*domain.CompanionRequest, error) {
	return r.getOne(ctx, "GetByPair", squirrel.Eq{"sender_id": senderID, "recipient_id": recipientID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.CompanionRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("companion_requests").
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	request, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan request: %w", ErrScanRow, op, err)
	}

	return request, nil
}

// ListBetween получает заявки между двумя гостями в обоих направлениях
func (r *Repository) ListBetween(ctx context.Context, a, b int64) ([]*domain.CompanionRequest, error) {
	return r.list(ctx, "ListBetween", squirrel.Or{
		squirrel.Eq{"sender_id": a, "recipient_id": b},
		squirrel.Eq{"sender_id": b, "recipient_id": a},
	})
}

// ListReceived получает входящие заявки гостя, опционально по статусу
func (r *Repository) ListReceived(ctx context.Context, recipientID int64, status *domain.CompanionRequestStatus) ([]*domain.CompanionRequest, error) {
	where := squirrel.Eq{"recipient_id": recipientID}
	if status != nil {
		where["status"] = *status
	}
	return r.list(ctx, "ListReceived", where)
}

// ListSent получает исходящие заявки гостя, опционально по статусу
func (r *Repository) ListSent(ctx context.Context, senderID int64, status *domain.CompanionRequestStatus) ([]*domain.CompanionRequest, error) {
	where := squirrel.Eq{"sender_id": senderID}
	if status != nil {
		where["status"] = *status
	}
	return r.list(ctx, "ListSent", where)
}

// ListAccepted получает все принятые заявки (для пересборки графа дружбы)
func (r *Repository) ListAccepted(ctx context.Context) ([]*domain.CompanionRequest, error) {
	return r.list(ctx, "ListAccepted", squirrel.Eq{"status": domain.RequestAccepted})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.CompanionRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("companion_requests").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	requests := make([]*domain.CompanionRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan request: %w", ErrScanRow, op, err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %w", ErrScanRow, op, err)
	}

	return requests, nil
}

// CountPending количество ожидающих входящих заявок
func (r *Repository) CountPending(ctx context.Context, recipientID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("companion_requests").
		Where(squirrel.Eq{"recipient_id": recipientID, "status": domain.RequestPending}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountPending - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountPending - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, request *domain.CompanionRequest) (*domain.CompanionRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("companion_requests").
		Columns("sender_id", "recipient_id", "status", "message", "group_name").
		Values(request.SenderID, request.RecipientID, request.Status, request.Message, request.GroupName).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&request.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return request, nil
}

// Update сохраняет статус, сообщение и группу заявки
func (r *Repository) Update(ctx context.Context, request *domain.CompanionRequest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("companion_requests").
		Set("status", request.Status).
		Set("message", request.Message).
		Set("group_name", request.GroupName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": request.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.CompanionRequest, error) {
	var req domain.CompanionRequest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.SenderID,
		&req.RecipientID,
		&req.Status,
		&req.Message,
		&req.GroupName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
