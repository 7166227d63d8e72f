package populate_friendships

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// GuestRepository источник записей компаньонов
type GuestRepository interface {
	ListAllCompanions(ctx context.Context) ([]*domain.Guest, error)
}

// RequestRepository источник принятых заявок
type RequestRepository interface {
	ListAccepted(ctx context.Context) ([]*domain.CompanionRequest, error)
}

// GroupRepository источник групп друзей
type GroupRepository interface {
	ListAll(ctx context.Context) ([]*domain.FriendGroup, error)
}

// FriendshipService идемпотентное создание пары ребер
type FriendshipService interface {
	Make(ctx context.Context, a, b int64, groupName string) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
