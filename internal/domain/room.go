package domain

// RoomStatus статус номера
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// Room номер размещения со своей вместимостью
// Инвариант: 0 <= CurrentAvailability <= PersonLimit
type Room struct {
	ID                  int64
	AccommodationID     int64
	Name                string
	PersonLimit         int
	CurrentAvailability int
	PricePerNight       float64
	Status              RoomStatus
}

// IsBookable номер не на обслуживании
func (r *Room) IsBookable() bool {
	return r.Status != RoomMaintenance
}

// CheckAvailability проверяет, что в номере хватает мест, ничего не меняя
func (r *Room) CheckAvailability(guestCount int) error {
	if guestCount < 1 {
		return ErrInvalidGuestCount
	}
	if guestCount > r.PersonLimit || r.CurrentAvailability < guestCount {
		return ErrInsufficientCapacity
	}
	return nil
}

// Reserve занимает guestCount мест; при нуле свободных номер становится OCCUPIED
func (r Room) Reserve(guestCount int) (Room, error) {
	if err := r.CheckAvailability(guestCount); err != nil {
		return r, err
	}
	r.CurrentAvailability -= guestCount
	if r.CurrentAvailability <= 0 {
		r.CurrentAvailability = 0
		r.Status = RoomOccupied
	}
	return r, nil
}

// Release возвращает guestCount мест, не превышая PersonLimit
func (r Room) Release(guestCount int) Room {
	if guestCount < 0 {
		return r
	}
	r.CurrentAvailability += guestCount
	if r.CurrentAvailability > r.PersonLimit {
		r.CurrentAvailability = r.PersonLimit
	}
	if r.CurrentAvailability < 0 {
		r.CurrentAvailability = 0
	}
	if r.CurrentAvailability > 0 && r.Status == RoomOccupied {
		r.Status = RoomAvailable
	}
	return r
}
