package request

import (
	"lesson-booking/internal/usecase"
)

// UpdateLessonRequest is a partial administrative update; omitted fields keep
// their stored value.
type UpdateLessonRequest struct {
	Topic    *string `json:"topic,omitempty"`
	Location *string `json:"location,omitempty"`
	Price    *int32  `json:"price,omitempty" binding:"omitempty,gte=0"`
	Space    *int32  `json:"space,omitempty" binding:"omitempty,gte=0"`
}

func (r UpdateLessonRequest) ToPatch() usecase.LessonPatch {
	return usecase.LessonPatch{
		Topic:    r.Topic,
		Location: r.Location,
		Price:    r.Price,
		Space:    r.Space,
	}
}
