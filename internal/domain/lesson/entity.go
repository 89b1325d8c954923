package lesson

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTopic    = errors.New("lesson topic cannot be empty")
	ErrEmptyLocation = errors.New("lesson location cannot be empty")
	ErrNegativePrice = errors.New("lesson price cannot be negative")
	ErrNegativeSpace = errors.New("lesson space cannot be negative")
	ErrTopicTooLong  = errors.New("lesson topic is too long (max 255 characters)")
)

const (
	MaxTopicLength = 255
)

type Lesson struct {
	id       uuid.UUID
	topic    string
	price    int32
	location string
	space    int32
}

func NewLesson(id uuid.UUID, topic string, price int32, location string, space int32) (*Lesson, error) {
	if err := validateTopic(topic); err != nil {
		return nil, err
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if space < 0 {
		return nil, ErrNegativeSpace
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Lesson{
		id:       id,
		topic:    strings.TrimSpace(topic),
		price:    price,
		location: strings.TrimSpace(location),
		space:    space,
	}, nil
}

func Reconstruct(id uuid.UUID, topic string, price int32, location string, space int32) *Lesson {
	return &Lesson{
		id:       id,
		topic:    topic,
		price:    price,
		location: location,
		space:    space,
	}
}

func (l *Lesson) HasSpaceFor(seats int32) bool {
	return l.space >= seats
}

func validateTopic(topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}
	if len(topic) > MaxTopicLength {
		return ErrTopicTooLong
	}
	return nil
}

func (l *Lesson) ID() uuid.UUID    { return l.id }
func (l *Lesson) Topic() string    { return l.topic }
func (l *Lesson) Price() int32     { return l.price }
func (l *Lesson) Location() string { return l.location }
func (l *Lesson) Space() int32     { return l.space }
