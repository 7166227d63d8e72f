package companion_requests

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/service/companions/models"
)

type CompanionService interface {
	SendRequest(ctx context.Context, req *models.SendRequestRequest) (*models.RequestResponse, error)
	Accept(ctx context.Context, requestID, actorID int64) (*models.AcceptResponse, error)
	Decline(ctx context.Context, requestID, actorID int64) (*models.RequestResponse, error)
	ListRequests(ctx context.Context, guestID int64) (*models.RequestListResponse, error)
	PendingCount(ctx context.Context, guestID int64) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
