package actions

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/hammerbid/ordertrack/internal/backend"
	"github.com/hammerbid/ordertrack/internal/metrics"
	"github.com/hammerbid/ordertrack/internal/notify"
)

// ErrActionInFlight rejects a second transition request for an order while
// one is still pending. The guard replaces the disabled-button state the
// browser UI relies on; without it two requests would race at the backend.
var ErrActionInFlight = errors.New("another action for this order is still in flight")

type Backend interface {
	SubmitShipping(ctx context.Context, orderID string, info backend.ShippingInfo) (*backend.OrderView, error)
	ConfirmShipment(ctx context.Context, orderID string, info backend.ShipmentInfo) (*backend.OrderView, error)
	ConfirmReceived(ctx context.Context, orderID string) (*backend.OrderView, error)
	CancelOrder(ctx context.Context, orderID, reason string) (*backend.OrderView, error)
	CreateRating(ctx context.Context, req backend.RatingRequest) (*backend.Rating, error)
	UpdateRating(ctx context.Context, ratingID string, req backend.RatingUpdate) (*backend.Rating, error)
}

type Invalidator interface {
	Invalidate(productID string)
}

// Service wraps the backend's state-transition requests with a uniform
// contract: one action per order at a time, a user-visible notification on
// every outcome, and a cache invalidation on success so the next read
// reflects the backend's new state. Cached state is never patched locally;
// re-fetching is the only reconciliation.
type Service struct {
	backend  Backend
	cache    Invalidator
	notifier notify.Notifier

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func New(backend Backend, cache Invalidator, notifier notify.Notifier) *Service {
	return &Service{
		backend:  backend,
		cache:    cache,
		notifier: notifier,
		inFlight: make(map[string]struct{}),
	}
}

func (s *Service) SubmitShipping(ctx context.Context, orderID string, info backend.ShippingInfo) (*backend.OrderView, error) {
	if err := s.begin(orderID); err != nil {
		return nil, err
	}
	defer s.finish(orderID)

	view, err := s.backend.SubmitShipping(ctx, orderID, info)
	if err != nil {
		return nil, s.fail("submit_shipping", orderID, err)
	}

	s.succeed("submit_shipping", orderID, view.ProductID, "shipping address submitted")
	return view, nil
}

func (s *Service) ConfirmShipment(ctx context.Context, orderID string, info backend.ShipmentInfo) (*backend.OrderView, error) {
	if err := s.begin(orderID); err != nil {
		return nil, err
	}
	defer s.finish(orderID)

	view, err := s.backend.ConfirmShipment(ctx, orderID, info)
	if err != nil {
		return nil, s.fail("confirm_shipment", orderID, err)
	}

	s.succeed("confirm_shipment", orderID, view.ProductID, "shipment confirmed")
	return view, nil
}

func (s *Service) ConfirmReceived(ctx context.Context, orderID string) (*backend.OrderView, error) {
	if err := s.begin(orderID); err != nil {
		return nil, err
	}
	defer s.finish(orderID)

	view, err := s.backend.ConfirmReceived(ctx, orderID)
	if err != nil {
		return nil, s.fail("confirm_received", orderID, err)
	}

	s.succeed("confirm_received", orderID, view.ProductID, "receipt confirmed")
	return view, nil
}

func (s *Service) CancelOrder(ctx context.Context, orderID, reason string) (*backend.OrderView, error) {
	if err := s.begin(orderID); err != nil {
		return nil, err
	}
	defer s.finish(orderID)

	view, err := s.backend.CancelOrder(ctx, orderID, reason)
	if err != nil {
		return nil, s.fail("cancel_order", orderID, err)
	}

	s.succeed("cancel_order", orderID, view.ProductID, "order cancelled")
	return view, nil
}

// CreateRating attaches feedback to a completed order. The invalidation
// flips any "already rated" surface from the form to the read-only display
// on the next read.
func (s *Service) CreateRating(ctx context.Context, productID string, req backend.RatingRequest) (*backend.Rating, error) {
	if err := s.begin(req.OrderID); err != nil {
		return nil, err
	}
	defer s.finish(req.OrderID)

	rating, err := s.backend.CreateRating(ctx, req)
	if err != nil {
		return nil, s.fail("create_rating", req.OrderID, err)
	}

	s.succeed("create_rating", req.OrderID, productID, "rating submitted")
	return rating, nil
}

func (s *Service) UpdateRating(ctx context.Context, productID, orderID, ratingID string, req backend.RatingUpdate) (*backend.Rating, error) {
	if err := s.begin(orderID); err != nil {
		return nil, err
	}
	defer s.finish(orderID)

	rating, err := s.backend.UpdateRating(ctx, ratingID, req)
	if err != nil {
		return nil, s.fail("update_rating", orderID, err)
	}

	s.succeed("update_rating", orderID, productID, "rating updated")
	return rating, nil
}

func (s *Service) begin(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[orderID]; busy {
		return ErrActionInFlight
	}
	s.inFlight[orderID] = struct{}{}
	return nil
}

func (s *Service) finish(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, orderID)
}

func (s *Service) fail(action, orderID string, err error) error {
	metrics.OrderActionErrorsTotal.WithLabelValues(action).Inc()
	s.notifier.Error(orderID, backend.UserMessage(err))
	zap.L().Warn("order action failed",
		zap.String("action", action),
		zap.String("order_id", orderID),
		zap.Error(err))
	return err
}

func (s *Service) succeed(action, orderID, productID, message string) {
	metrics.OrderActionsTotal.WithLabelValues(action).Inc()
	s.notifier.Info(orderID, message)
	s.cache.Invalidate(productID)
}
