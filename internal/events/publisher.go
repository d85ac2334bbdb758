// Package events publishes order lifecycle notifications for the
// downstream email and back-office consumers.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aclo-store/checkout-service/internal/config"
	"github.com/aclo-store/checkout-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type       string `json:"type"`
	OrderID    string `json:"order_id"`
	UserID     string `json:"user_id,omitempty"`
	TotalPrice int    `json:"total_price,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}

type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Publisher) OrderCreated(ctx context.Context, order entities.Order) error {
	return p.publish(ctx, order.OrderID, OrderEvent{
		Type:       TypeOrderCreated,
		OrderID:    order.OrderID,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		OccurredAt: time.Now().Unix(),
	})
}

func (p *Publisher) OrderStatusChanged(ctx context.Context, orderID string, from, to entities.OrderStatus) error {
	return p.publish(ctx, orderID, OrderEvent{
		Type:       TypeOrderStatusChanged,
		OrderID:    orderID,
		From:       string(from),
		To:         string(to),
		OccurredAt: time.Now().Unix(),
	})
}

func (p *Publisher) publish(ctx context.Context, key string, event OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Keyed by order id so all events of one order stay in partition order.
	err = p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data})
	if err != nil {
		return err
	}

	p.logger.Debug("event published", slog.String("type", event.Type), slog.String("order_id", key))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
