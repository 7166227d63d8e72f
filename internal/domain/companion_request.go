package domain

import "time"

// CompanionRequestStatus статус заявки в компаньоны
type CompanionRequestStatus string

const (
	RequestPending  CompanionRequestStatus = "pending"
	RequestAccepted CompanionRequestStatus = "accepted"
	RequestDeclined CompanionRequestStatus = "declined"
)

// CompanionRequest направленная заявка; пара (SenderID, RecipientID) уникальна
type CompanionRequest struct {
	ID          int64
	SenderID    int64
	RecipientID int64
	Status      CompanionRequestStatus
	Message     *string
	GroupName   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Involves returns true when guestID is either party of the request
func (r *CompanionRequest) Involves(guestID int64) bool {
	return r.SenderID == guestID || r.RecipientID == guestID
}

// Group название группы из заявки или группа по умолчанию
func (r *CompanionRequest) Group() string {
	if r.GroupName == nil || *r.GroupName == "" {
		return DefaultFriendshipGroup
	}
	return *r.GroupName
}

// Accept переводит заявку в accepted; допустимо только из pending
func (r *CompanionRequest) Accept() error {
	if r.Status != RequestPending {
		return ErrInvalidTransition
	}
	r.Status = RequestAccepted
	return nil
}

// Decline переводит заявку в declined; допустимо только из pending
func (r *CompanionRequest) Decline() error {
	if r.Status != RequestPending {
		return ErrInvalidTransition
	}
	r.Status = RequestDeclined
	return nil
}

// Resend возвращает заявку в pending с новыми сообщением и группой
// Уже ожидающую заявку повторно отправить нельзя
func (r *CompanionRequest) Resend(message, groupName *string) error {
	if r.Status == RequestPending {
		return ErrInvalidTransition
	}
	r.Status = RequestPending
	r.Message = message
	r.GroupName = groupName
	return nil
}
