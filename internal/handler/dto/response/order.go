package response

import (
	"time"

	"lesson-booking/internal/domain/order"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	LessonIDs []uuid.UUID `json:"lessonIDs"`
	Space     int32       `json:"space"`
	Date      time.Time   `json:"date"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:        o.ID(),
		Name:      o.Name(),
		Phone:     o.Phone(),
		LessonIDs: o.LessonIDs(),
		Space:     o.Space(),
		Date:      o.Date(),
	}
}

func FromOrders(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}
