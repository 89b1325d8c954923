package response

import (
	"lesson-booking/internal/domain/lesson"

	"github.com/google/uuid"
)

type LessonResponse struct {
	ID       uuid.UUID `json:"id"`
	Topic    string    `json:"topic"`
	Price    int32     `json:"price"`
	Location string    `json:"location"`
	Space    int32     `json:"space"`
}

func FromLesson(l *lesson.Lesson) *LessonResponse {
	return &LessonResponse{
		ID:       l.ID(),
		Topic:    l.Topic(),
		Price:    l.Price(),
		Location: l.Location(),
		Space:    l.Space(),
	}
}

func FromLessons(lessons []*lesson.Lesson) []*LessonResponse {
	out := make([]*LessonResponse, len(lessons))
	for i, l := range lessons {
		out[i] = FromLesson(l)
	}
	return out
}
