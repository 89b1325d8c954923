// Package memory implements the lesson and order stores on in-process maps.
// It mirrors the Postgres repositories' contract, including the atomic
// conditional decrement, and backs the workflow tests.
package memory

import (
	"context"
	"sync"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/pkg/patch"
	"lesson-booking/internal/usecase"

	"github.com/google/uuid"
)

type record struct {
	topic    string
	price    int32
	location string
	space    int32
}

type LessonStore struct {
	mu      sync.RWMutex
	lessons map[uuid.UUID]*record
	inserts []uuid.UUID // preserves insertion order for FindAll
}

func NewLessonStore() *LessonStore {
	return &LessonStore{lessons: make(map[uuid.UUID]*record)}
}

// Seed adds a lesson directly, bypassing the workflow.
func (s *LessonStore) Seed(l *lesson.Lesson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons[l.ID()] = &record{
		topic:    l.Topic(),
		price:    l.Price(),
		location: l.Location(),
		space:    l.Space(),
	}
	s.inserts = append(s.inserts, l.ID())
}

func (s *LessonStore) FindAll(_ context.Context) ([]*lesson.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*lesson.Lesson, 0, len(s.lessons))
	for _, id := range s.inserts {
		out = append(out, s.toLesson(id))
	}
	return out, nil
}

func (s *LessonStore) FindByID(_ context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.lessons[id]; !ok {
		return nil, infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	return s.toLesson(id), nil
}

func (s *LessonStore) DecrementSpace(_ context.Context, id uuid.UUID, amount int32) (*lesson.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.lessons[id]
	if !ok {
		return nil, infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	if rec.space < amount {
		return nil, infra.WrapRepoErr("insufficient lesson space", nil, infra.KindConflict)
	}
	rec.space -= amount
	return s.toLesson(id), nil
}

func (s *LessonStore) RestoreSpace(_ context.Context, id uuid.UUID, amount int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.lessons[id]
	if !ok {
		return infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	rec.space += amount
	return nil
}

func (s *LessonStore) Update(_ context.Context, id uuid.UUID, p usecase.LessonPatch) (*lesson.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.lessons[id]
	if !ok {
		return nil, infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	rec.topic = patch.Coalesce(p.Topic, rec.topic)
	rec.location = patch.Coalesce(p.Location, rec.location)
	rec.price = patch.Coalesce(p.Price, rec.price)
	rec.space = patch.Coalesce(p.Space, rec.space)
	return s.toLesson(id), nil
}

// callers must hold at least a read lock
func (s *LessonStore) toLesson(id uuid.UUID) *lesson.Lesson {
	rec := s.lessons[id]
	return lesson.Reconstruct(id, rec.topic, rec.price, rec.location, rec.space)
}
