package brokermessage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/config"
	"aurora-grand/internal/xpkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// Exchange carries storefront events for presentation-layer consumers.
	Exchange = "storefront_events"
	// Queue is bound to the fanout for the notification subscriber.
	Queue = "storefront_notifications"

	publishTimeout = 5 * time.Second
)

// RabbitMQ publishes storefront events to a fanout exchange and lets the
// notification subscriber consume them.
type RabbitMQ struct {
	cfg   *config.RabbitMQ
	conn  *amqp.Connection
	ch    *amqp.Channel
	mylog logger.Logger
	mu    sync.Mutex
}

func New(cfg *config.RabbitMQ, mylog logger.Logger) (*RabbitMQ, error) {
	r := &RabbitMQ{
		cfg:   cfg,
		mylog: mylog,
	}
	if err := r.connect(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RabbitMQ) connect() error {
	conn, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s:%s/%s",
		r.cfg.User,
		r.cfg.Password,
		r.cfg.Host,
		r.cfg.Port,
		r.cfg.VHost,
	))
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	if err := ch.ExchangeDeclare(
		Exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		Queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return err
	}

	if err := ch.QueueBind(Queue, "", Exchange, false, nil); err != nil {
		return err
	}

	r.conn = conn
	r.ch = ch
	return nil
}

func (r *RabbitMQ) IsAlive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return false
	}
	if r.ch == nil || r.ch.IsClosed() {
		return false
	}
	return true
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ch != nil && !r.ch.IsClosed() {
		if err := r.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if r.conn != nil && !r.conn.IsClosed() {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}

// Notify publishes the event as persistent JSON on the fanout exchange.
func (r *RabbitMQ) Notify(ctx context.Context, event models.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return r.ch.PublishWithContext(pubCtx,
		Exchange, // exchange
		"",       // routing key
		false,    // mandatory
		false,    // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
}

// Consume delivers events from the notification queue. Acknowledgement is
// the consumer's responsibility.
func (r *RabbitMQ) Consume(ctx context.Context, consumerName string) (<-chan amqp.Delivery, error) {
	return r.ch.ConsumeWithContext(ctx, Queue, consumerName, false, false, false, false, nil)
}
