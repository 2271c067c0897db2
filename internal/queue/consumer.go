// Package queue contains the background consumer that listens to the
// booking events queue and writes one line per event to the booking log.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// StartBookingConsumer connects to the broker at url, declares queue
// (durable) and appends every event to out.  It reconnects with
// exponential backoff (capped at 30s) and returns only when ctx is done.
// Messages that cannot be decoded or written are rejected without
// requeue so the loop keeps going.
func StartBookingConsumer(ctx context.Context, url, queue string, out io.Writer) error {
	log := logrus.WithField("component", "booking-consumer")
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.WithError(err).Warnf("failed to dial broker; retrying in %s", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = consumeLoop(ctx, conn, queue, out, log)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.WithError(err).Warn("consume loop ended; reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, queue string, out io.Writer, log *logrus.Entry) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.WithError(err).Warn("set QoS failed")
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, out); err != nil {
			log.WithError(err).Error("handle message failed")
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, out io.Writer) error {
	var ev BookingEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if _, err := io.WriteString(out, FormatLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatLine renders ev as one human-friendly log line ending in "\n".
func FormatLine(ev BookingEvent) string {
	switch ev.Type {
	case EventLoaded:
		return fmt.Sprintf("[%s] Snapshot loaded | flight=%s | source=%q | loaded=%d | skipped=%d\n",
			ev.OccurredAt, ev.FlightCode, ev.Source, ev.Loaded, ev.Skipped)
	case EventBooked:
		return fmt.Sprintf("[%s] Seat booked | flight=%s | seat=%s | name=%q\n",
			ev.OccurredAt, ev.FlightCode, ev.Seat, ev.Name)
	case EventCancelled:
		return fmt.Sprintf("[%s] Booking cancelled | flight=%s | seat=%s | name=%q\n",
			ev.OccurredAt, ev.FlightCode, ev.Seat, ev.Name)
	}
	return fmt.Sprintf("[%s] Unknown event %q | flight=%s\n", ev.OccurredAt, ev.Type, ev.FlightCode)
}

// sleep waits for d or until ctx is done; it reports whether d elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
