package companions

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/domain"
	"github.com/m04kA/tourism-booking-service/internal/service/notifications"
)

// GuestRepository интерфейс репозитория гостей и их компаньонов
type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	ListCompanions(ctx context.Context, ownerID int64) ([]*domain.Guest, error)
	FindMirror(ctx context.Context, ownerID, linkedGuestID int64) (*domain.Guest, error)
	CreateCompanion(ctx context.Context, companion *domain.Guest) (*domain.Guest, error)
	UpdateGroup(ctx context.Context, id int64, groupName *string) error
	Delete(ctx context.Context, id int64) error
}

// RequestRepository интерфейс репозитория заявок в компаньоны
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CompanionRequest, error)
	ListBetween(ctx context.Context, a, b int64) ([]*domain.CompanionRequest, error)
	ListReceived(ctx context.Context, recipientID int64, status *domain.CompanionRequestStatus) ([]*domain.CompanionRequest, error)
	ListSent(ctx context.Context, senderID int64, status *domain.CompanionRequestStatus) ([]*domain.CompanionRequest, error)
	CountPending(ctx context.Context, recipientID int64) (int, error)
	Create(ctx context.Context, request *domain.CompanionRequest) (*domain.CompanionRequest, error)
	Update(ctx context.Context, request *domain.CompanionRequest) error
}

// FriendshipService симметричный граф дружбы
type FriendshipService interface {
	Make(ctx context.Context, a, b int64, groupName string) (int, error)
	Exists(ctx context.Context, userID, friendID int64) (bool, error)
}

// Notifier уведомление получателя заявки
type Notifier interface {
	CompanionRequestReceived(ctx context.Context, to notifications.Recipient, senderName string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
