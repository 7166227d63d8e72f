package friendgroup

import (
	"context"
	"fmt"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/pkg/dbmetrics"
	"github.com/m04kA/tourism-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий групп гостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория групп
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll получает все группы вместе с участниками
func (r *Repository) ListAll(ctx context.Context) ([]*domain.FriendGroup, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("g.id", "g.name", "g.owner_id", "m.guest_id").
		From("friend_groups g").
		LeftJoin("friend_group_members m ON m.group_id = g.id").
		OrderBy("g.id ASC", "m.guest_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	groups := make([]*domain.FriendGroup, 0)
	byID := make(map[int64]*domain.FriendGroup)

	for rows.Next() {
		var (
			id, ownerID int64
			name        string
			memberID    *int64
		)
		if err := rows.Scan(&id, &name, &ownerID, &memberID); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan group: %w", ErrScanRow, err)
		}

		group, ok := byID[id]
		if !ok {
			group = &domain.FriendGroup{ID: id, Name: name, OwnerID: ownerID}
			byID[id] = group
			groups = append(groups, group)
		}
		if memberID != nil {
			group.MemberIDs = append(group.MemberIDs, *memberID)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - iterate rows: %w", ErrScanRow, err)
	}

	return groups, nil
}
