package friendships

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/service/friendships/models"
)

type FriendshipService interface {
	Make(ctx context.Context, a, b int64, groupName string) (int, error)
	End(ctx context.Context, a, b int64) (int64, error)
	ListFriends(ctx context.Context, userID int64) (*models.FriendListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
