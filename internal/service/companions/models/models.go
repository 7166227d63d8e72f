package models

import (
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// Request модели

// SendRequestRequest заявка в компаньоны
type SendRequestRequest struct {
	SenderID    int64   `json:"senderId"`
	RecipientID int64   `json:"recipientId"`
	Message     *string `json:"message,omitempty"`
	GroupName   *string `json:"groupName,omitempty"`
}

// AddCompanionRequest добавление зависимого профиля
type AddCompanionRequest struct {
	OwnerID           int64   `json:"ownerId"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	PreferredLanguage string  `json:"preferredLanguage"`
	GroupName         *string `json:"groupName,omitempty"`
}

// Response модели

// RequestResponse заявка в компаньоны
type RequestResponse struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"senderId"`
	RecipientID int64     `json:"recipientId"`
	Status      string    `json:"status"`
	Message     *string   `json:"message,omitempty"`
	GroupName   string    `json:"groupName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RequestListResponse входящие и исходящие ожидающие заявки
type RequestListResponse struct {
	Received []RequestResponse `json:"received"`
	Sent     []RequestResponse `json:"sent"`
}

// CompanionResponse компаньон гостя
type CompanionResponse struct {
	ID                int64   `json:"id"`
	OwnerID           int64   `json:"ownerId"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone,omitempty"`
	PreferredLanguage string  `json:"preferredLanguage"`
	LinkedGuestID     *int64  `json:"linkedGuestId,omitempty"`
	GroupName         *string `json:"groupName,omitempty"`
}

// AcceptResponse результат принятия заявки: заявка и зеркальные компаньоны обеих сторон
type AcceptResponse struct {
	Request            RequestResponse   `json:"request"`
	SenderCompanion    CompanionResponse `json:"senderCompanion"`    // получатель в списке отправителя
	RecipientCompanion CompanionResponse `json:"recipientCompanion"` // отправитель в списке получателя
}

// Методы конвертации

// FromDomainRequest конвертирует заявку в DTO
func FromDomainRequest(r *domain.CompanionRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		SenderID:    r.SenderID,
		RecipientID: r.RecipientID,
		Status:      string(r.Status),
		Message:     r.Message,
		GroupName:   r.Group(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRequestList конвертирует список заявок
func FromDomainRequestList(requests []*domain.CompanionRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromDomainRequest(r))
	}
	return out
}

// FromDomainCompanion конвертирует запись компаньона в DTO
func FromDomainCompanion(g *domain.Guest) CompanionResponse {
	resp := CompanionResponse{
		ID:                g.ID,
		FirstName:         g.FirstName,
		LastName:          g.LastName,
		Email:             g.Email,
		Phone:             g.Phone,
		PreferredLanguage: g.Language(),
		LinkedGuestID:     g.LinkedGuestID,
		GroupName:         g.GroupName,
	}
	if g.MadeBy != nil {
		resp.OwnerID = *g.MadeBy
	}
	return resp
}

// FromDomainCompanionList конвертирует список компаньонов
func FromDomainCompanionList(guests []*domain.Guest) []CompanionResponse {
	out := make([]CompanionResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, FromDomainCompanion(g))
	}
	return out
}
