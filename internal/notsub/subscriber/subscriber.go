package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	brokermessage "aurora-grand/internal/storefront/adapter/broker_message"
	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/config"
	"aurora-grand/internal/xpkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

const (
	consumerName = "notification-subscriber"
	maxHandlers  = 10
)

// Subscriber consumes storefront events from the notifications queue and
// renders them as user-facing messages. It is the presentation-layer
// collaborator the cart engine signals instead of opening a panel itself.
type Subscriber struct {
	cfg   *config.Config
	mylog logger.Logger
	mb    *brokermessage.RabbitMQ

	mu sync.Mutex
}

func New(cfg *config.Config, mylog logger.Logger) *Subscriber {
	return &Subscriber{
		cfg:   cfg,
		mylog: mylog,
	}
}

// Run connects to the broker and consumes until the context is cancelled.
func (s *Subscriber) Run(ctx context.Context) error {
	mylog := s.mylog.Action("subscriber_run")

	mb, err := brokermessage.New(s.cfg.RMQ, s.mylog)
	if err != nil {
		mylog.Action("mb_connection_failed").Error("Failed to connect to message broker", err)
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}
	s.mu.Lock()
	s.mb = mb
	s.mu.Unlock()
	mylog.Action("mb_connected").Info("Successful message broker connection")

	messageBus, err := mb.Consume(ctx, consumerName)
	if err != nil {
		return fmt.Errorf("consume from rabbitmq: %w", err)
	}

	return s.work(ctx, messageBus)
}

// Stop waits for in-flight handlers and closes the broker connection.
func (s *Subscriber) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down subscriber")

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Action("mb_close_failed").Error("Failed to close message broker", err)
			return fmt.Errorf("mb close: %w", err)
		}
		s.mylog.Action("mb_closed").Info("Message broker closed")
	}

	s.mylog.Action("graceful_shutdown_completed").Info("Subscriber shut down gracefully")
	return nil
}

func (s *Subscriber) work(ctx context.Context, messageBus <-chan amqp.Delivery) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxHandlers)

	for {
		select {
		case <-ctx.Done():
			s.mylog.Action("work_shutdown").Info("Stopping message consumption due to context cancel")
			return g.Wait()

		case msg, ok := <-messageBus:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				if err := s.processMsg(msg); err != nil {
					s.mylog.Action("process_msg_failed").Error("Failed to process event", err)
					if nackErr := msg.Nack(false, false); nackErr != nil {
						s.mylog.Action("nack_failed").Error("Failed to nack", nackErr)
					}
				}
				return nil
			})
		}
	}
}

func (s *Subscriber) processMsg(msg amqp.Delivery) error {
	var event models.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	log := s.mylog.WithGroup("details").With("type", event.Type)
	log.Action("event_received").Info("Received storefront event")

	switch event.Type {
	case models.EventItemAdded:
		fmt.Printf("Added to cart: %s (x%d)\n", event.ItemName, event.Qty)
	case models.EventOrderConfirmed:
		fmt.Printf("Order #%d placed successfully. Total: ₹%d\n", event.OrderID, event.Total)
	default:
		log.Debug("Ignoring unknown event type")
	}

	if err := msg.Ack(false); err != nil {
		return fmt.Errorf("acknowledge message: %w", err)
	}
	return nil
}
