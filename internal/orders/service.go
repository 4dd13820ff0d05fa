package orders

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/am-nutrition/storefront/internal/cart"
	"github.com/am-nutrition/storefront/internal/errors"
	"github.com/am-nutrition/storefront/internal/inventory"
	"github.com/am-nutrition/storefront/internal/metrics"
	"github.com/am-nutrition/storefront/internal/models"
	repository "github.com/am-nutrition/storefront/internal/repositories"
	"github.com/am-nutrition/storefront/internal/shipping"
)

// Service assembles orders from the cart engine, the pricing tables and the
// customer form, and drives the submission sequence: remote write, inventory
// reconciliation, cart reset.
type Service struct {
	engine     *cart.Engine
	orders     repository.OrderRepository
	reconciler *inventory.Reconciler
	numbers    *NumberGenerator
}

func NewService(engine *cart.Engine, orders repository.OrderRepository, reconciler *inventory.Reconciler, numbers *NumberGenerator) *Service {
	return &Service{
		engine:     engine,
		orders:     orders,
		reconciler: reconciler,
		numbers:    numbers,
	}
}

// BuildOrder validates the form fields and freezes the cart into an immutable
// order record with status "pending". Generating the order number advances
// the persisted counter as a side effect.
func (s *Service) BuildOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	orderType := strings.TrimSpace(req.OrderType)
	wilaya := strings.TrimSpace(req.Wilaya)
	commune := strings.TrimSpace(req.Commune)

	if orderType == "" || wilaya == "" || commune == "" {
		return nil, errors.ValidationError("Delivery type, wilaya and commune are required")
	}

	if orderType != shipping.DeliveryHome && orderType != shipping.DeliveryPickupPoint {
		return nil, errors.ValidationError("Unknown delivery type: " + orderType)
	}

	if shipping.KnownRegion(wilaya) && !shipping.ValidLocality(wilaya, commune) {
		return nil, errors.ValidationError("Commune does not belong to wilaya " + wilaya)
	}

	// One atomic snapshot; lines and total must come from the same cart
	// state or a concurrent mutation could desync them.
	state := s.engine.State()
	if len(state.Lines) == 0 {
		return nil, errors.ValidationError("Cannot create order with empty cart")
	}

	cartTotal := state.Total
	shippingFee := shipping.Quote(wilaya, orderType)

	orderNumber, err := s.numbers.Next(ctx)
	if err != nil {
		return nil, err
	}

	orderLines := make([]models.OrderLine, 0, len(state.Lines))
	for _, line := range state.Lines {
		orderLines = append(orderLines, models.OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Total:     line.Total(),
		})
	}

	return &models.Order{
		OrderNumber: orderNumber,
		Status:      models.OrderStatusPending,
		OrderType:   orderType,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Phone1:      strings.TrimSpace(req.Phone1),
		Phone2:      strings.TrimSpace(req.Phone2),
		Wilaya:      wilaya,
		Commune:     commune,
		Lines:       orderLines,
		CartTotal:   cartTotal,
		ShippingFee: shippingFee,
		GrandTotal:  cartTotal + float64(shippingFee),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// PlaceOrder submits the assembled order. The remote write must succeed for
// the order to stand; reconciliation afterwards is best-effort and its
// failures never unwind the committed order. The order counter has already
// advanced by the time a write fails; the numbering gap is accepted.
func (s *Service) PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	order, err := s.BuildOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, errors.RemoteUnavailableError("Failed to submit order").WithError(err)
	}

	order.ID = id
	metrics.IncOrderPlaced()

	slog.Info("Order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("orderId", id),
		slog.Float64("grandTotal", order.GrandTotal))

	s.reconciler.ApplyOrder(ctx, order)

	if err := s.engine.Clear(ctx); err != nil {
		slog.Error("Failed to clear cart after order", slog.String("error", err.Error()))
	}

	return order, nil
}
