//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"lesson-booking/internal/infra/memory"
	"lesson-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newLessonFixture(t *testing.T) (*memory.LessonStore, usecase.LessonUseCase) {
	t.Helper()
	lessons := memory.NewLessonStore()
	return lessons, usecase.NewLessonUseCase(lessons)
}

func TestListLessons(t *testing.T) {
	ctx := context.Background()
	lessons, uc := newLessonFixture(t)

	listed, err := uc.ListLessons(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	math := seedLesson(t, lessons, "math", 5)
	music := seedLesson(t, lessons, "music", 3)

	listed, err = uc.ListLessons(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, math.ID(), listed[0].ID())
	assert.Equal(t, music.ID(), listed[1].ID())
}

func TestGetLesson(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the lesson", func(t *testing.T) {
		lessons, uc := newLessonFixture(t)
		math := seedLesson(t, lessons, "math", 5)

		found, err := uc.GetLesson(ctx, math.ID())
		require.NoError(t, err)
		assert.Equal(t, "math", found.Topic())
		assert.Equal(t, int32(5), found.Space())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, uc := newLessonFixture(t)
		missing := uuid.New()

		_, err := uc.GetLesson(ctx, missing)
		require.ErrorIs(t, err, usecase.ErrLessonNotFound)

		var notFound *usecase.LessonNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, missing, notFound.LessonID)
	})
}

func TestUpdateLesson(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the provided fields", func(t *testing.T) {
		lessons, uc := newLessonFixture(t)
		math := seedLesson(t, lessons, "math", 5)

		updated, err := uc.UpdateLesson(ctx, math.ID(), usecase.LessonPatch{
			Price: ptr(int32(150)),
		})
		require.NoError(t, err)
		assert.Equal(t, int32(150), updated.Price())
		assert.Equal(t, "math", updated.Topic())
		assert.Equal(t, "Hendon", updated.Location())
		assert.Equal(t, int32(5), updated.Space())
	})

	t.Run("updates every field at once", func(t *testing.T) {
		lessons, uc := newLessonFixture(t)
		math := seedLesson(t, lessons, "math", 5)

		updated, err := uc.UpdateLesson(ctx, math.ID(), usecase.LessonPatch{
			Topic:    ptr("chemistry"),
			Location: ptr("Colindale"),
			Price:    ptr(int32(90)),
			Space:    ptr(int32(10)),
		})
		require.NoError(t, err)
		assert.Equal(t, "chemistry", updated.Topic())
		assert.Equal(t, "Colindale", updated.Location())
		assert.Equal(t, int32(90), updated.Price())
		assert.Equal(t, int32(10), updated.Space())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, uc := newLessonFixture(t)

		_, err := uc.UpdateLesson(ctx, uuid.New(), usecase.LessonPatch{Price: ptr(int32(1))})
		require.ErrorIs(t, err, usecase.ErrLessonNotFound)
	})

	t.Run("rejects invalid patches before the store", func(t *testing.T) {
		lessons, uc := newLessonFixture(t)
		math := seedLesson(t, lessons, "math", 5)

		cases := []struct {
			name  string
			patch usecase.LessonPatch
		}{
			{name: "empty topic", patch: usecase.LessonPatch{Topic: ptr("")}},
			{name: "empty location", patch: usecase.LessonPatch{Location: ptr("")}},
			{name: "negative price", patch: usecase.LessonPatch{Price: ptr(int32(-1))}},
			{name: "negative space", patch: usecase.LessonPatch{Space: ptr(int32(-1))}},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := uc.UpdateLesson(ctx, math.ID(), c.patch)
				require.ErrorIs(t, err, usecase.ErrValidation)
			})
		}

		// the failed patches must not have changed anything
		kept, err := uc.GetLesson(ctx, math.ID())
		require.NoError(t, err)
		assert.Equal(t, "math", kept.Topic())
		assert.Equal(t, int32(100), kept.Price())
		assert.Equal(t, int32(5), kept.Space())
	})
}
