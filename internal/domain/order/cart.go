package order

import "github.com/google/uuid"

// CartLine requests Quantity seats of one lesson.
type CartLine struct {
	LessonID uuid.UUID
	Quantity int32
}

// Cart is the ordered sequence of lesson references being booked.
type Cart []CartLine

func (c Cart) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCart
	}
	for _, line := range c {
		if line.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// TotalSeats is the seat count summed over all lines.
func (c Cart) TotalSeats() int32 {
	var total int32
	for _, line := range c {
		total += line.Quantity
	}
	return total
}

// LessonIDs expands the cart into lesson ids, one entry per reserved seat.
func (c Cart) LessonIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, c.TotalSeats())
	for _, line := range c {
		for i := int32(0); i < line.Quantity; i++ {
			ids = append(ids, line.LessonID)
		}
	}
	return ids
}
