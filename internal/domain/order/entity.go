package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("customer name cannot be empty")
	ErrEmptyPhone      = errors.New("customer phone cannot be empty")
	ErrEmptyCart       = errors.New("cart cannot be empty")
	ErrInvalidQuantity = errors.New("cart line quantity must be at least 1")
)

// Order is a customer's reservation of seats across one or more lessons.
// Immutable once created; the creation date is assigned by the store at insert.
type Order struct {
	id        uuid.UUID
	name      string
	phone     string
	lessonIDs []uuid.UUID
	space     int32
	date      time.Time
}

func NewOrder(name, phone string, cart Cart) (*Order, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(phone) == "" {
		return nil, ErrEmptyPhone
	}
	if err := cart.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:        uuid.New(),
		name:      strings.TrimSpace(name),
		phone:     strings.TrimSpace(phone),
		lessonIDs: cart.LessonIDs(),
		space:     cart.TotalSeats(),
	}, nil
}

func Reconstruct(id uuid.UUID, name, phone string, lessonIDs []uuid.UUID, space int32, date time.Time) *Order {
	return &Order{
		id:        id,
		name:      name,
		phone:     phone,
		lessonIDs: lessonIDs,
		space:     space,
		date:      date,
	}
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) Name() string           { return o.name }
func (o *Order) Phone() string          { return o.phone }
func (o *Order) LessonIDs() []uuid.UUID { return o.lessonIDs }
func (o *Order) Space() int32           { return o.space }
func (o *Order) Date() time.Time        { return o.date }
