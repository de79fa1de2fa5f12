// README: AMQP connection for booking event publishing.
package infra

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const BookingQueue = "booking.created"

// NewAMQP dials the broker and declares the booking queue. The returned
// connection is owned by the caller.
func NewAMQP(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(BookingQueue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", BookingQueue, err)
	}
	return conn, nil
}
