package usecase

import (
	"context"
	"errors"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrInsufficientSpace = errors.New("insufficient space")
	ErrValidation        = errors.New("validation error")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// LessonNotFoundError identifies which lesson id failed to resolve.
type LessonNotFoundError struct {
	LessonID uuid.UUID
	cause    error
}

func NewLessonNotFoundError(id uuid.UUID, cause error) *LessonNotFoundError {
	return &LessonNotFoundError{LessonID: id, cause: cause}
}

func (e *LessonNotFoundError) Error() string {
	return "lesson with ID " + e.LessonID.String() + " not found"
}

func (e *LessonNotFoundError) Unwrap() error { return e.cause }

func (e *LessonNotFoundError) Is(target error) bool {
	return target == ErrLessonNotFound
}

// InsufficientSpaceError identifies which lesson ran out of seats.
type InsufficientSpaceError struct {
	Topic string
	cause error
}

func NewInsufficientSpaceError(topic string, cause error) *InsufficientSpaceError {
	return &InsufficientSpaceError{Topic: topic, cause: cause}
}

func (e *InsufficientSpaceError) Error() string {
	return "not enough spaces available for lesson " + e.Topic
}

func (e *InsufficientSpaceError) Unwrap() error { return e.cause }

func (e *InsufficientSpaceError) Is(target error) bool {
	return target == ErrInsufficientSpace
}

// LessonPatch carries a partial administrative update; nil fields are left untouched.
type LessonPatch struct {
	Topic    *string
	Location *string
	Price    *int32
	Space    *int32
}

type LessonStore interface {
	FindAll(ctx context.Context) ([]*lesson.Lesson, error)
	FindByID(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error)
	// DecrementSpace reduces space by amount as one atomic conditional step,
	// failing with KindConflict when amount exceeds the current space.
	DecrementSpace(ctx context.Context, id uuid.UUID, amount int32) (*lesson.Lesson, error)
	// RestoreSpace gives seats back; compensation path only.
	RestoreSpace(ctx context.Context, id uuid.UUID, amount int32) error
	Update(ctx context.Context, id uuid.UUID, p LessonPatch) (*lesson.Lesson, error)
}

type LessonUseCase interface {
	ListLessons(ctx context.Context) ([]*lesson.Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error)
	UpdateLesson(ctx context.Context, id uuid.UUID, p LessonPatch) (*lesson.Lesson, error)
}

type lessonUseCaseImpl struct {
	lessons LessonStore
}

func NewLessonUseCase(lessons LessonStore) LessonUseCase {
	return &lessonUseCaseImpl{lessons: lessons}
}

func (u *lessonUseCaseImpl) ListLessons(ctx context.Context) ([]*lesson.Lesson, error) {
	lessons, err := u.lessons.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return lessons, nil
}

func (u *lessonUseCaseImpl) GetLesson(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	found, err := u.lessons.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, NewLessonNotFoundError(id, err)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return found, nil
}

func (u *lessonUseCaseImpl) UpdateLesson(ctx context.Context, id uuid.UUID, p LessonPatch) (*lesson.Lesson, error) {
	if err := validatePatch(p); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	updated, err := u.lessons.Update(ctx, id, p)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, NewLessonNotFoundError(id, err)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return updated, nil
}

func validatePatch(p LessonPatch) error {
	if p.Topic != nil && *p.Topic == "" {
		return lesson.ErrEmptyTopic
	}
	if p.Location != nil && *p.Location == "" {
		return lesson.ErrEmptyLocation
	}
	if p.Price != nil && *p.Price < 0 {
		return lesson.ErrNegativePrice
	}
	if p.Space != nil && *p.Space < 0 {
		return lesson.ErrNegativeSpace
	}
	return nil
}
