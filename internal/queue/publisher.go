package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue names the events are delivered to. Both queues are declared
// durable and messages persistent, so the audit trail survives a broker
// restart.
const (
	orderCreatedQueue   = "order.created"
	orderCancelledQueue = "order.cancelled"
)

// Publisher delivers audit events. Publish failures are reported to the
// caller but the orchestrator treats them as non-fatal: a booking never
// fails because the broker is down.
type Publisher interface {
	OrderCreated(ctx context.Context, event OrderCreatedEvent) error
	OrderCancelled(ctx context.Context, event OrderCancelledEvent) error
}

// AMQPPublisher publishes events to RabbitMQ. Each publish dials its own
// short-lived connection; event volume here is human-scale booking traffic,
// so connection reuse is not worth the reconnect bookkeeping.
type AMQPPublisher struct {
	url    string
	logger *slog.Logger
}

// NewAMQPPublisher returns a publisher for the given broker URL.
func NewAMQPPublisher(url string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{url: url, logger: logger}
}

// OrderCreated publishes an OrderCreatedEvent to the order.created queue.
func (p *AMQPPublisher) OrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	return p.publish(ctx, orderCreatedQueue, event)
}

// OrderCancelled publishes an OrderCancelledEvent to the order.cancelled queue.
func (p *AMQPPublisher) OrderCancelled(ctx context.Context, event OrderCancelledEvent) error {
	return p.publish(ctx, orderCancelledQueue, event)
}

func (p *AMQPPublisher) publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.logger.Warn("audit publish: dial failed", "queue", queueName, "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Warn("audit publish: channel open failed", "queue", queueName, "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so consumers can come up in any order.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.logger.Warn("audit publish: queue declare failed", "queue", queueName, "error", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.logger.Warn("audit publish failed", "queue", queueName, "error", err)
		return err
	}
	return nil
}

// NopPublisher discards every event. It is the default when no broker is
// configured and keeps tests free of network dependencies.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(context.Context, OrderCreatedEvent) error     { return nil }
func (NopPublisher) OrderCancelled(context.Context, OrderCancelledEvent) error { return nil }
