package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	q "github.com/iliyamo/flight-seat-reservation/internal/queue"
)

// EventPublisher delivers booking events.  Failures are reported but
// BookingService never lets them fail the operation that raised them.
type EventPublisher interface {
	Publish(ctx context.Context, ev q.BookingEvent) error
}

// NopPublisher drops every event.  It is used when EVENTS_ENABLED is off.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, q.BookingEvent) error { return nil }

// AMQPPublisher publishes events to a durable RabbitMQ queue, dialling
// once per message.
type AMQPPublisher struct {
	URL   string
	Queue string
	log   *logrus.Entry
}

// NewAMQPPublisher returns a publisher for url and queue.
func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	return &AMQPPublisher{URL: url, Queue: queue, log: logrus.WithField("component", "rabbitmq")}
}

// Publish sends ev as a persistent JSON message through the default
// exchange with the queue name as routing key.  Any error is logged and
// returned so the caller can choose to ignore it.
func (p *AMQPPublisher) Publish(ctx context.Context, ev q.BookingEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.log.WithError(err).Warn("dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.WithError(err).Warn("channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		p.Queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		p.log.WithError(err).Warn("queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.log.WithError(err).Warn("marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Type:         ev.Type,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		p.log.WithError(err).Warn("publish failed")
		return err
	}
	return nil
}
