// Package events publishes booking lifecycle events to Kafka. Publishing
// is best-effort: a broker failure is logged, never surfaced to the API
// caller, and a Publisher built without brokers is a safe no-op.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"roomdesk/pkg/logger"
	"roomdesk/pkg/model"
)

const (
	TypeBookingCreated     = "booking.created"
	TypeBookingRescheduled = "booking.rescheduled"
	TypeBookingUpdated     = "booking.updated"
	TypeBookingCancelled   = "booking.cancelled"
)

type BookingEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

// NewPublisher returns a nil Publisher when no brokers are configured;
// all methods tolerate the nil receiver.
func NewPublisher(brokers []string, topic string, log *logger.Logger) *Publisher {
	if len(brokers) == 0 {
		log.Info("Booking event publishing disabled (no Kafka brokers configured)")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // key by room for per-room ordering
		RequiredAcks: kafka.RequireAll,
		Compression:  compress.Snappy,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka writer error", "message", msg, "args", args)
		}),
	}

	log.Info("Booking event publishing enabled", "topic", topic)
	return &Publisher{writer: writer, log: log}
}

// Publish emits one lifecycle event for the booking. Failures are logged
// and swallowed; event delivery must never fail a booking operation.
func (p *Publisher) Publish(ctx context.Context, eventType string, booking *model.Booking) {
	if p == nil {
		return
	}

	event := BookingEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		UserID:     booking.UserID,
		Status:     booking.Status.String(),
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to encode booking event", "type", eventType, "booking_id", booking.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(booking.RoomID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			"type", eventType,
			"booking_id", booking.ID,
			"room_id", booking.RoomID,
			"error", err,
		)
		return
	}

	p.log.Debug("Booking event published", "type", eventType, "booking_id", booking.ID)
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
