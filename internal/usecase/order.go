package usecase

import (
	"context"
	"log/slog"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/pkg/errs"
)

type OrderStore interface {
	// Create persists the order, assigning the creation date, and returns the stored record.
	Create(ctx context.Context, o *order.Order) (*order.Order, error)
	FindAll(ctx context.Context) ([]*order.Order, error)
}

type PlaceOrderInput struct {
	Name  string
	Phone string
	Cart  order.Cart
}

type OrderUseCase interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*order.Order, error)
	ListOrders(ctx context.Context) ([]*order.Order, error)
}

type orderUseCaseImpl struct {
	lessons LessonStore
	orders  OrderStore
}

func NewOrderUseCase(lessons LessonStore, orders OrderStore) OrderUseCase {
	return &orderUseCaseImpl{
		lessons: lessons,
		orders:  orders,
	}
}

// PlaceOrder turns a cart into a persisted order, or rejects it without
// leaving partial reservations behind. Validation runs over the whole cart
// before any seat is taken; a decrement failure after that triggers
// compensating restores for the lines already applied.
func (u *orderUseCaseImpl) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*order.Order, error) {
	newOrder, err := order.NewOrder(in.Name, in.Phone, in.Cart)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	validated, err := u.validateCart(ctx, in.Cart)
	if err != nil {
		return nil, err
	}

	if err := u.reserveSeats(ctx, in.Cart, validated); err != nil {
		return nil, err
	}

	stored, err := u.orders.Create(ctx, newOrder)
	if err != nil {
		// Seats stay reserved: the decrements committed and the customer holds them,
		// the order record just failed to persist.
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return stored, nil
}

func (u *orderUseCaseImpl) ListOrders(ctx context.Context) ([]*order.Order, error) {
	orders, err := u.orders.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return orders, nil
}

// validateCart checks every line before any mutation, so a cart that will fail
// on its third lesson never decrements its first.
func (u *orderUseCaseImpl) validateCart(ctx context.Context, cart order.Cart) ([]*lesson.Lesson, error) {
	validated := make([]*lesson.Lesson, 0, len(cart))
	for _, line := range cart {
		found, err := u.lessons.FindByID(ctx, line.LessonID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, NewLessonNotFoundError(line.LessonID, err)
			}
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
		if !found.HasSpaceFor(line.Quantity) {
			return nil, NewInsufficientSpaceError(found.Topic(), nil)
		}
		validated = append(validated, found)
	}
	return validated, nil
}

// reserveSeats applies the decrements in cart order. Each decrement is atomic
// at the store, so a seat taken by a concurrent order between validation and
// here surfaces as a conflict; already-applied lines are then restored.
func (u *orderUseCaseImpl) reserveSeats(ctx context.Context, cart order.Cart, validated []*lesson.Lesson) error {
	for i, line := range cart {
		if _, err := u.lessons.DecrementSpace(ctx, line.LessonID, line.Quantity); err != nil {
			u.restoreSeats(ctx, cart[:i])
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return NewInsufficientSpaceError(validated[i].Topic(), err)
			case infra.IsKind(err, infra.KindNotFound):
				return NewLessonNotFoundError(line.LessonID, err)
			default:
				return errs.Mark(err, ErrStoreUnavailable)
			}
		}
	}
	return nil
}

func (u *orderUseCaseImpl) restoreSeats(ctx context.Context, applied order.Cart) {
	for _, line := range applied {
		if err := u.lessons.RestoreSpace(ctx, line.LessonID, line.Quantity); err != nil {
			slog.Error("failed to restore lesson space after aborted order",
				"lesson_id", line.LessonID, "amount", line.Quantity, "error", err)
		}
	}
}
