package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/am-nutrition/storefront/internal/catalog"
	"github.com/am-nutrition/storefront/internal/errors"
	"github.com/am-nutrition/storefront/internal/localstore"
	"github.com/am-nutrition/storefront/internal/metrics"
	"github.com/am-nutrition/storefront/internal/models"
)

// Engine owns the authoritative in-memory cart. Invariants held across every
// mutation: at most one line per product id, every line quantity is positive,
// and no line quantity exceeds the product's stock in the current catalog
// snapshot. Operations are serialized; each runs to completion before the
// next, like the event loop they model.
type Engine struct {
	mu      sync.Mutex
	catalog *catalog.Snapshot
	store   localstore.Store
	lines   []models.CartLine
}

func NewEngine(snapshot *catalog.Snapshot, store localstore.Store) *Engine {
	return &Engine{
		catalog: snapshot,
		store:   store,
	}
}

// Load restores the persisted cart at session start. Lines with non-positive
// quantities are dropped; they must never survive a reload.
func (e *Engine) Load(ctx context.Context) error {

	lines, found, err := e.store.LoadCart(ctx)
	if err != nil {
		return errors.InternalError("Failed to restore cart").WithError(err)
	}

	if !found {
		return nil
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}

	e.mu.Lock()
	e.lines = kept
	e.mu.Unlock()

	return nil
}

// AddItem puts one unit of the product in the cart. It refuses without
// mutating when the product is out of stock or the line already holds the
// whole remaining stock.
func (e *Engine) AddItem(ctx context.Context, productID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, ok := e.catalog.Get(productID)
	if !ok {
		return errors.NotFoundError("Product not found")
	}

	if !product.InStock() {
		return errors.StockUnavailableError("Product is out of stock")
	}

	if i := e.lineIndex(productID); i >= 0 {
		if e.lines[i].Quantity >= product.Quantity {
			return errors.StockUnavailableError("Maximum available quantity reached")
		}

		e.lines[i].Quantity++
	} else {
		e.lines = append(e.lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		})
	}

	if err := e.persist(ctx); err != nil {
		return err
	}

	metrics.IncCartMutation("add")

	return nil
}

// ChangeQuantity applies a delta to an existing line. A resulting quantity of
// zero or less removes the line; a quantity above the remaining stock is
// clamped to it. The clamped state is persisted and the limit still reported,
// so callers can notify without losing the mutation.
func (e *Engine) ChangeQuantity(ctx context.Context, productID string, delta int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.lineIndex(productID)
	if i < 0 {
		return errors.NotFoundError("Item not found in cart")
	}

	quantity := e.lines[i].Quantity + delta
	if quantity <= 0 {
		e.removeAt(i)

		if err := e.persist(ctx); err != nil {
			return err
		}

		metrics.IncCartMutation("remove")

		return nil
	}

	clamped := false

	// A product missing from the snapshot has no sellable stock; its line
	// clamps away entirely.
	product, ok := e.catalog.Get(productID)
	switch {
	case !ok || product.Quantity <= 0:
		e.removeAt(i)
		clamped = true
	case quantity > product.Quantity:
		e.lines[i].Quantity = product.Quantity
		clamped = true
	default:
		e.lines[i].Quantity = quantity
	}

	if err := e.persist(ctx); err != nil {
		return err
	}

	metrics.IncCartMutation("change_quantity")

	if clamped {
		return errors.StockUnavailableError("Maximum available quantity reached")
	}

	return nil
}

// RemoveItem deletes the matching line. Removing an absent line is a no-op.
func (e *Engine) RemoveItem(ctx context.Context, productID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.lineIndex(productID)
	if i < 0 {
		return nil
	}

	e.removeAt(i)

	if err := e.persist(ctx); err != nil {
		return err
	}

	metrics.IncCartMutation("remove")

	return nil
}

// Clear empties the cart.
func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	hadLines := len(e.lines) > 0
	e.lines = nil

	if err := e.persist(ctx); err != nil {
		return err
	}

	if hadLines {
		metrics.IncCartMutation("clear")
	}

	return nil
}

// Total is the sum of price × quantity over current lines.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return total(e.lines)
}

// Count is the sum of line quantities, the badge number next to the cart icon.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, line := range e.lines {
		count += line.Quantity
	}

	return count
}

// Lines returns a copy of the cart lines in insertion order.
func (e *Engine) Lines() []models.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.CartLine, len(e.lines))
	copy(out, e.lines)

	return out
}

// State bundles lines, total and count for rendering layers.
func (e *Engine) State() *models.Cart {
	e.mu.Lock()
	defer e.mu.Unlock()

	lines := make([]models.CartLine, len(e.lines))
	copy(lines, e.lines)

	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return &models.Cart{
		Lines: lines,
		Total: total(lines),
		Count: count,
	}
}

func (e *Engine) lineIndex(productID string) int {
	for i, line := range e.lines {
		if line.ProductID == productID {
			return i
		}
	}

	return -1
}

func (e *Engine) removeAt(i int) {
	e.lines = append(e.lines[:i], e.lines[i+1:]...)
}

// persist overwrites the durable cart slot with the full current state. The
// in-memory cart stays authoritative when the write fails; the next mutation
// rewrites the whole slot anyway.
func (e *Engine) persist(ctx context.Context) error {
	if err := e.store.SaveCart(ctx, e.lines); err != nil {
		slog.Error("Failed to persist cart", slog.String("error", err.Error()))

		return errors.InternalError("Failed to persist cart").WithError(err)
	}

	return nil
}

func total(lines []models.CartLine) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Total()
	}

	return sum
}
