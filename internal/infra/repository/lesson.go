package repository

import (
	"context"
	"errors"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

func (r *LessonRepository) FindAll(ctx context.Context) ([]*lesson.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, topic, price, location, space FROM lessons ORDER BY topic, location`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all lessons", err)
	}
	defer rows.Close()

	var lessons []*lesson.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lesson row", err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lesson rows", err)
	}

	return lessons, nil
}

func (r *LessonRepository) FindByID(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, topic, price, location, space FROM lessons WHERE id = $1`, id)

	l, err := scanLesson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lesson by ID", err)
	}

	return l, nil
}

// DecrementSpace is the one correctness-critical mutation: a single conditional
// statement so two concurrent orders cannot both take the last seat.
func (r *LessonRepository) DecrementSpace(ctx context.Context, id uuid.UUID, amount int32) (*lesson.Lesson, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE lessons SET space = space - $2
		 WHERE id = $1 AND space >= $2
		 RETURNING id, topic, price, location, space`, id, amount)

	l, err := scanLesson(row)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("failed to decrement lesson space", err)
	}

	// No row matched: either the lesson is gone or the seats are.
	var exists bool
	if checkErr := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM lessons WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
		return nil, infra.WrapRepoErr("failed to check lesson existence", checkErr)
	}
	if !exists {
		return nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("insufficient lesson space", err, infra.KindConflict)
}

func (r *LessonRepository) RestoreSpace(ctx context.Context, id uuid.UUID, amount int32) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE lessons SET space = space + $2 WHERE id = $1`, id, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to restore lesson space", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LessonRepository) Update(ctx context.Context, id uuid.UUID, p usecase.LessonPatch) (*lesson.Lesson, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE lessons SET
			topic    = COALESCE($2, topic),
			location = COALESCE($3, location),
			price    = COALESCE($4, price),
			space    = COALESCE($5, space)
		 WHERE id = $1
		 RETURNING id, topic, price, location, space`,
		id, p.Topic, p.Location, p.Price, p.Space)

	l, err := scanLesson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update lesson", err)
	}

	return l, nil
}

func scanLesson(row pgx.Row) (*lesson.Lesson, error) {
	var (
		id              uuid.UUID
		topic, location string
		price, space    int32
	)
	if err := row.Scan(&id, &topic, &price, &location, &space); err != nil {
		return nil, err
	}
	return lesson.Reconstruct(id, topic, price, location, space), nil
}
