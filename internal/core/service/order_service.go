package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tfxsoftware/PickPegaAPI/internal/api/metrics"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// OrderService covers order creation and the restaurant-scoped projections.
// now is injectable so the calendar-day filter is testable.
type OrderService struct {
	orders ports.OrderRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, now: time.Now, logger: logger}
}

func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (string, error) {
	products := make([]domain.Product, len(input.Products))
	for i, p := range input.Products {
		products[i] = domain.Product{Name: p.Name, Extra: p.Extra}
	}
	id, err := s.orders.Insert(ctx, &domain.Order{
		RestaurantID: input.RestaurantID,
		Products:     products,
		Date:         input.Date,
		Extra:        input.Extra,
	})
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().Str("order_id", id).Str("restaurant_id", input.RestaurantID).Msg("order created")
	return id, nil
}

func (s *OrderService) Edit(ctx context.Context, id string, fields map[string]any) error {
	delete(fields, "id")
	if err := s.orders.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (s *OrderService) ListByRestaurant(ctx context.Context, restaurantID string) ([]map[string]any, error) {
	orders, err := s.orders.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return orderViews(orders), nil
}

// ListByDay fetches every order of the restaurant and keeps those whose
// stored DD/MM/YYYY date equals today's local calendar date. The filter runs
// here rather than in the store so the exact-calendar-day semantics stay
// independent of how the date string is indexed.
func (s *OrderService) ListByDay(ctx context.Context, restaurantID string) ([]map[string]any, error) {
	orders, err := s.orders.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	today := s.now().Local()
	var matched []*domain.Order
	for _, o := range orders {
		if o.OnDay(today) {
			matched = append(matched, o)
		}
	}
	if len(matched) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return orderViews(matched), nil
}

func (s *OrderService) ListItems(ctx context.Context, restaurantID string) ([]string, error) {
	orders, err := s.orders.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, o := range orders {
		for _, p := range o.Products {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return names, nil
}

func orderViews(orders []*domain.Order) []map[string]any {
	out := make([]map[string]any, len(orders))
	for i, o := range orders {
		out[i] = o.View()
	}
	return out
}

var _ ports.OrderService = (*OrderService)(nil)
