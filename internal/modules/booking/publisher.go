// README: AMQP publisher for booking-created events.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"cabdesk/internal/infra"
)

// AMQPPublisher emits one booking.created message per accepted booking for
// the external notification/email collaborator.
type AMQPPublisher struct {
	conn *amqp.Connection
}

func NewAMQPPublisher(conn *amqp.Connection) *AMQPPublisher {
	return &AMQPPublisher{conn: conn}
}

func (p *AMQPPublisher) BookingCreated(ctx context.Context, b *Booking) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	defer ch.Close()

	msg := map[string]any{
		"booking_id":   string(b.ID),
		"first_name":   b.FirstName,
		"last_name":    b.LastName,
		"email":        b.Email,
		"mobile":       b.Mobile,
		"ride_date":    b.Date,
		"ride_time":    b.Time,
		"trip_type":    string(b.TripType),
		"pickup_name":  b.PickupName,
		"drop_name":    b.DropName,
		"vehicle_name": b.VehicleName,
		"base_fee":     b.BaseFee,
		"total_fee":    b.TotalFee,
		"currency":     b.Currency,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := ch.PublishWithContext(ctx,
		"",
		infra.BookingQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
