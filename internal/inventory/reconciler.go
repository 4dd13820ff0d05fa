package inventory

import (
	"context"
	"log/slog"

	"github.com/am-nutrition/storefront/internal/metrics"
	"github.com/am-nutrition/storefront/internal/models"
	repository "github.com/am-nutrition/storefront/internal/repositories"
)

const (
	ReasonInsufficientQuantity = "insufficient quantity"
	ReasonProductNotFound      = "product not found"
)

// LineResult records the outcome of one line's stock decrement.
type LineResult struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Success     bool   `json:"success"`
	Reason      string `json:"reason,omitempty"`
	NewQuantity int    `json:"new_quantity,omitempty"`
}

// Refresher is the catalog snapshot's refresh hook.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Notifier is the out-of-band channel for failures that need administrative
// resolution; end users never see them.
type Notifier interface {
	NotifyReconciliationFailures(ctx context.Context, orderNumber string, failures []LineResult) error
}

// Reconciler decrements remote stock after an order has been durably written.
// Lines are processed sequentially and independently: one line's failure
// never blocks or rolls back the others, and stock is never written negative.
type Reconciler struct {
	products repository.ProductRepository
	catalog  Refresher
	notifier Notifier
}

// NewReconciler builds a reconciler; notifier may be nil.
func NewReconciler(products repository.ProductRepository, catalog Refresher, notifier Notifier) *Reconciler {
	return &Reconciler{
		products: products,
		catalog:  catalog,
		notifier: notifier,
	}
}

// ApplyOrder is best-effort: it always returns a result per line and never an
// error, because the order already stands as placed. Afterwards it forces a
// catalog refresh so subsequent reads reflect the updated stock.
func (r *Reconciler) ApplyOrder(ctx context.Context, order *models.Order) []LineResult {

	results := make([]LineResult, 0, len(order.Lines))

	for _, line := range order.Lines {
		result := r.applyLine(ctx, line)
		results = append(results, result)

		if result.Success {
			metrics.IncReconciliationLine("success")
			slog.Info("Stock updated",
				slog.String("orderNumber", order.OrderNumber),
				slog.String("productId", result.ProductID),
				slog.Int("newQuantity", result.NewQuantity))
		} else {
			metrics.IncReconciliationLine("failure")
			slog.Warn("Stock update skipped",
				slog.String("orderNumber", order.OrderNumber),
				slog.String("productId", result.ProductID),
				slog.String("reason", result.Reason))
		}
	}

	if failures := failedResults(results); len(failures) > 0 && r.notifier != nil {
		if err := r.notifier.NotifyReconciliationFailures(ctx, order.OrderNumber, failures); err != nil {
			slog.Error("Failed to send reconciliation alert", slog.String("error", err.Error()))
		}
	}

	if err := r.catalog.Refresh(ctx); err != nil {
		slog.Error("Catalog refresh after reconciliation failed", slog.String("error", err.Error()))
	}

	return results
}

func (r *Reconciler) applyLine(ctx context.Context, line models.OrderLine) LineResult {

	result := LineResult{ProductID: line.ProductID, Name: line.Name}

	product, err := r.products.GetProductByID(ctx, line.ProductID)
	if err != nil {
		result.Reason = err.Error()

		return result
	}

	if product == nil {
		result.Reason = ReasonProductNotFound

		return result
	}

	newQuantity := product.Quantity - line.Quantity
	if newQuantity < 0 {
		result.Reason = ReasonInsufficientQuantity

		return result
	}

	if err := r.products.UpdateQuantity(ctx, line.ProductID, newQuantity); err != nil {
		result.Reason = err.Error()

		return result
	}

	result.Success = true
	result.NewQuantity = newQuantity

	return result
}

func failedResults(results []LineResult) []LineResult {
	var failures []LineResult

	for _, result := range results {
		if !result.Success {
			failures = append(failures, result)
		}
	}

	return failures
}
