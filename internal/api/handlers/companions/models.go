package companions

import (
	"github.com/m04kA/tourism-booking-service/internal/service/companions/models"
)

// AddCompanionRequest HTTP request model
type AddCompanionRequest struct {
	FirstName         string  `json:"firstName" validate:"required,max=100"`
	LastName          string  `json:"lastName" validate:"max=100"`
	Email             string  `json:"email" validate:"omitempty,email"`
	Phone             string  `json:"phone" validate:"max=50"`
	PreferredLanguage string  `json:"preferredLanguage" validate:"omitempty,max=10"`
	GroupName         *string `json:"groupName,omitempty" validate:"omitempty,max=100"`
}

// UpdateCompanionRequest HTTP request model; пустая группа снимает метку
type UpdateCompanionRequest struct {
	GroupName *string `json:"groupName" validate:"omitempty,max=100"`
}

// CompanionListResponse HTTP response model
type CompanionListResponse struct {
	Companions []models.CompanionResponse `json:"companions"`
	Total      int                        `json:"total"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddCompanionRequest) ToServiceRequest(ownerID int64) *models.AddCompanionRequest {
	return &models.AddCompanionRequest{
		OwnerID:           ownerID,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             r.Email,
		Phone:             r.Phone,
		PreferredLanguage: r.PreferredLanguage,
		GroupName:         r.GroupName,
	}
}
