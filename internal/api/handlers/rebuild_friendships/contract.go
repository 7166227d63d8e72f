package rebuild_friendships

import (
	"context"

	populateFriendships "github.com/m04kA/tourism-booking-service/internal/usecase/populate_friendships"
)

type PopulateUseCase interface {
	Execute(ctx context.Context) (*populateFriendships.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
