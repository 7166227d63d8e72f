package companions

import (
	"context"

	"github.com/m04kA/tourism-booking-service/internal/service/companions/models"
)

type CompanionService interface {
	AddCompanion(ctx context.Context, req *models.AddCompanionRequest) (*models.CompanionResponse, error)
	ListCompanions(ctx context.Context, ownerID int64) ([]models.CompanionResponse, error)
	UpdateCompanionGroup(ctx context.Context, ownerID, companionID int64, groupName *string) (*models.CompanionResponse, error)
	DeleteCompanion(ctx context.Context, ownerID, companionID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
