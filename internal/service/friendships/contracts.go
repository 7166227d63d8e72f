package friendships

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// FriendshipRepository интерфейс репозитория ребер дружбы
type FriendshipRepository interface {
	CreateIfAbsent(ctx context.Context, userID, friendID int64, groupName string) (bool, error)
	DeletePair(ctx context.Context, a, b int64) (int64, error)
	Exists(ctx context.Context, userID, friendID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Friendship, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
