package repository

import (
	"context"
	"time"

	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewOrderRepository(pool *pgxpool.Pool, clk clock.Clock) *OrderRepository {
	return &OrderRepository{pool: pool, clock: clk}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	var date time.Time
	err := r.pool.QueryRow(ctx,
		`INSERT INTO orders (id, name, phone, lesson_ids, space, order_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING order_date`,
		o.ID(), o.Name(), o.Phone(), o.LessonIDs(), o.Space(), r.clock.Now()).Scan(&date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert order", err)
	}

	return order.Reconstruct(o.ID(), o.Name(), o.Phone(), o.LessonIDs(), o.Space(), date), nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, phone, lesson_ids, space, order_date FROM orders ORDER BY order_date`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var (
			id          uuid.UUID
			name, phone string
			lessonIDs   []uuid.UUID
			space       int32
			date        time.Time
		)
		if err := rows.Scan(&id, &name, &phone, &lessonIDs, &space, &date); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		orders = append(orders, order.Reconstruct(id, name, phone, lessonIDs, space, date))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	return orders, nil
}
