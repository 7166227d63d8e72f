package domain

// Capacity счетчик мест расписания тура: всего и уже забронировано
// Инвариант: 0 <= Booked <= Total
type Capacity struct {
	Total  int
	Booked int
}

// Available возвращает количество свободных мест (не меньше нуля)
func (c Capacity) Available() int {
	if c.Booked >= c.Total {
		return 0
	}
	return c.Total - c.Booked
}

// Reserve возвращает новое состояние счетчика после бронирования guestCount мест
func (c Capacity) Reserve(guestCount int) (Capacity, error) {
	if guestCount < 1 {
		return c, ErrInvalidGuestCount
	}
	if c.Available() < guestCount {
		return c, ErrInsufficientCapacity
	}
	c.Booked += guestCount
	return c, nil
}

// Release возвращает guestCount мест, не опускаясь ниже нуля
func (c Capacity) Release(guestCount int) Capacity {
	if guestCount < 0 {
		return c
	}
	c.Booked -= guestCount
	if c.Booked < 0 {
		c.Booked = 0
	}
	if c.Booked > c.Total {
		c.Booked = c.Total
	}
	return c
}
