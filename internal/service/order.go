package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aclo-store/checkout-service/internal/entities"
	"github.com/aclo-store/checkout-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByOrderID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, deliveredAt *time.Time) error
	SaveCancelRequest(ctx context.Context, orderID string, req entities.CancelRequest) error
	SetTrackingLink(ctx context.Context, orderID, link string) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
	cache  Cache
	events EventPublisher
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache Cache, events EventPublisher) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
		cache:  cache,
		events: events,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.ErrorContext(ctx, "failed to unmarshal cached order",
				slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByOrderID(ctx, orderID)
		return err
	}
	if err := utils.Retry(readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal order",
			slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID, data)
	return order, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus advances the order along the transition table. Delivery
// stamps DeliveredAt; everything else touches status alone.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error) {
	order, err := s.repo.GetOrderByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if !order.Status.CanTransitionTo(target) {
		return entities.Order{}, &entities.StatusTransitionError{From: order.Status, To: target}
	}

	return s.applyStatus(ctx, order, target)
}

// RequestCancellation moves a still-actionable order to cancelling and
// records the reason together with the status to restore on rejection.
func (s *orderService) RequestCancellation(ctx context.Context, orderID, userID, reason string) (entities.Order, error) {
	order, err := s.repo.GetOrderByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrForbidden
	}
	if !order.Status.Cancellable() {
		return entities.Order{}, &entities.StatusTransitionError{From: order.Status, To: entities.StatusCancelling}
	}

	req := entities.CancelRequest{
		Reason:      reason,
		RequestedAt: time.Now(),
		PriorStatus: order.Status,
	}
	if err := s.repo.SaveCancelRequest(ctx, orderID, req); err != nil {
		return entities.Order{}, err
	}
	order.CancelRequest = &req

	return s.applyStatus(ctx, order, entities.StatusCancelling)
}

// ResolveCancellation settles a pending cancellation: approval cancels
// the order, rejection restores the status recorded in the request.
func (s *orderService) ResolveCancellation(ctx context.Context, orderID string, approve bool) (entities.Order, error) {
	order, err := s.repo.GetOrderByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status != entities.StatusCancelling || order.CancelRequest == nil {
		return entities.Order{}, entities.ErrNoCancelRequest
	}

	target := entities.StatusCancelled
	if !approve {
		target = order.CancelRequest.PriorStatus
	}
	return s.applyStatus(ctx, order, target)
}

func (s *orderService) applyStatus(ctx context.Context, order entities.Order, target entities.OrderStatus) (entities.Order, error) {
	from := order.Status

	var deliveredAt *time.Time
	if target == entities.StatusDelivered {
		now := time.Now()
		deliveredAt = &now
	}

	if err := s.repo.UpdateOrderStatus(ctx, order.OrderID, target, deliveredAt); err != nil {
		return entities.Order{}, err
	}

	order.Status = target
	order.DeliveredAt = deliveredAt
	s.cache.Delete(order.OrderID)

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", order.OrderID),
		slog.String("from", string(from)), slog.String("to", string(target)))

	if err := s.events.OrderStatusChanged(ctx, order.OrderID, from, target); err != nil {
		s.logger.WarnContext(ctx, "failed to publish status event",
			slog.String("order_id", order.OrderID), slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) SetTracking(ctx context.Context, orderID, link string) (entities.Order, error) {
	if err := s.repo.SetTrackingLink(ctx, orderID, link); err != nil {
		return entities.Order{}, err
	}
	s.cache.Delete(orderID)
	return s.repo.GetOrderByOrderID(ctx, orderID)
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.repo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.cache.Delete(orderID)
	s.logger.InfoContext(ctx, "order deleted", slog.String("order_id", orderID))
	return nil
}
