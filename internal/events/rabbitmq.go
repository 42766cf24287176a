// Package events publishes ride lifecycle events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rideshare/rides-api/internal/domain"
)

// RoutingKeyRideCreated is the topic routing key of ride.created events.
const RoutingKeyRideCreated = "ride.created"

// Publisher sends ride events to a durable topic exchange.
// It holds one connection and one channel; amqp channels are not safe for
// concurrent publishing, so Publish calls are serialized.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex
}

// Dial connects to the broker at url and declares exchange as a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events.Dial: connect: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events.Dial: open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("events.Dial: declare exchange %q: %w", exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// RideCreated publishes a ride.created event carrying the stored ride.
func (p *Publisher) RideCreated(ctx context.Context, ride domain.Ride) error {
	msg, err := newRideCreatedMessage(ride, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("events.Publisher.RideCreated: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyRideCreated, false, false, msg); err != nil {
		return fmt.Errorf("events.Publisher.RideCreated: publish: %w", err)
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("events.Publisher.Close: channel: %w", err)
	}
	return p.conn.Close()
}

// newRideCreatedMessage encodes ride as a persistent JSON message with a fresh id.
func newRideCreatedMessage(ride domain.Ride, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(ride)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode ride: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    now,
		Type:         RoutingKeyRideCreated,
		Body:         body,
	}, nil
}
