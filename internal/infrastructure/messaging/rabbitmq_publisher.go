package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"gestao_integrada/internal/usecase/interfaces"
)

// Envelope is the body of every domain event.
type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitPublisher publishes domain events to a topic exchange, using the
// event type as routing key.
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	now      func() time.Time
	newID    func() string
}

var _ interfaces.IEventPublisher = (*RabbitPublisher)(nil)

const (
	dialAttempts = 15
	dialInterval = 3 * time.Second
)

// DialRabbitPublisher connects to the broker, retrying while it starts up,
// and declares the durable topic exchange.
func DialRabbitPublisher(ctx context.Context, url, exchange string) (*RabbitPublisher, error) {
	var (
		conn *amqp.Connection
		ch   *amqp.Channel
		err  error
	)
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			ch, err = conn.Channel()
			if err == nil {
				break
			}
			_ = conn.Close()
		}
		log.Printf("[events][amqp] dial attempt=%d/%d err=%v", attempt, dialAttempts, err)
		if attempt == dialAttempts {
			return nil, fmt.Errorf("connect amqp after %d attempts: %w", dialAttempts, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(dialInterval):
		}
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	log.Printf("[events][amqp] connected exchange=%s", exchange)

	p := newRabbitPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

func newRabbitPublisher(ch channel, exchange string) *RabbitPublisher {
	return &RabbitPublisher{
		ch:       ch,
		exchange: exchange,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	env := Envelope{ID: p.newID(), Type: eventType, OccurredAt: p.now().UTC(), Payload: payload}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", eventType, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, eventType, false, false, amqp.Publishing{
		MessageId:    env.ID,
		ContentType:  "application/json",
		Timestamp:    env.OccurredAt,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish event %s: %w", eventType, err)
	}
	log.Printf("[events][amqp] published type=%s id=%s", eventType, env.ID)
	return nil
}

func (p *RabbitPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// NoopPublisher drops events; used when no broker is configured.
type NoopPublisher struct{}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
