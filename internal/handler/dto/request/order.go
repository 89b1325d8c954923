package request

import (
	"encoding/json"
	"strings"

	"lesson-booking/internal/domain/order"

	"github.com/google/uuid"
)

// CartItem is one cart line; quantity defaults to a single seat.
type CartItem struct {
	LessonID uuid.UUID `binding:"required"`
	Quantity int32     `binding:"omitempty,gte=1"`
}

// UnmarshalJSON accepts "id" or "lessonId" as the lesson key and ignores the
// remaining fields: clients post whole lesson objects into the cart.
func (i *CartItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       uuid.UUID `json:"id"`
		LessonID uuid.UUID `json:"lessonId"`
		Quantity int32     `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	i.LessonID = raw.LessonID
	if i.LessonID == uuid.Nil {
		i.LessonID = raw.ID
	}
	i.Quantity = raw.Quantity
	return nil
}

// CreateOrderRequest accepts both order body shapes: the canonical
// {firstName, lastName, phone, cart} and the legacy
// {name, phone, lessonIDs, space}, where space is the per-lesson seat count.
type CreateOrderRequest struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone" binding:"required"`
	Cart      []CartItem `json:"cart" binding:"omitempty,dive"`

	LessonIDs []uuid.UUID `json:"lessonIDs"`
	Space     int32       `json:"space" binding:"omitempty,gte=1"`
}

// CustomerName prefers the single name field and otherwise composes it from
// the first/last pair.
func (r CreateOrderRequest) CustomerName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// ToCart normalizes either body shape into the canonical cart.
func (r CreateOrderRequest) ToCart() order.Cart {
	if len(r.Cart) > 0 {
		cart := make(order.Cart, len(r.Cart))
		for i, item := range r.Cart {
			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}
			cart[i] = order.CartLine{LessonID: item.LessonID, Quantity: quantity}
		}
		return cart
	}

	cart := make(order.Cart, len(r.LessonIDs))
	for i, id := range r.LessonIDs {
		cart[i] = order.CartLine{LessonID: id, Quantity: r.Space}
	}
	return cart
}
