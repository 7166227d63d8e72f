package companion_requests

import (
	"github.com/m04kA/tourism-booking-service/internal/service/companions/models"
)

// SendRequestRequest HTTP request model
type SendRequestRequest struct {
	RecipientID int64   `json:"recipientId" validate:"required,gt=0"`
	Message     *string `json:"message,omitempty" validate:"omitempty,max=1000"`
	GroupName   *string `json:"groupName,omitempty" validate:"omitempty,max=100"`
}

// CountResponse HTTP response model
type CountResponse struct {
	Pending int `json:"pending"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SendRequestRequest) ToServiceRequest(senderID int64) *models.SendRequestRequest {
	return &models.SendRequestRequest{
		SenderID:    senderID,
		RecipientID: r.RecipientID,
		Message:     r.Message,
		GroupName:   r.GroupName,
	}
}
