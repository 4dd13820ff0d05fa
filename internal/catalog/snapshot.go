package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/am-nutrition/storefront/internal/errors"
	"github.com/am-nutrition/storefront/internal/metrics"
	"github.com/am-nutrition/storefront/internal/models"
)

// ProductSource is the remote catalog contract: a wholesale read of whatever
// was last committed.
type ProductSource interface {
	ListAll(ctx context.Context) ([]models.Product, error)
}

// Snapshot is the in-memory, read-mostly view of the catalog. It is refreshed
// wholesale; readers between refreshes see a stable product list.
type Snapshot struct {
	mu       sync.RWMutex
	source   ProductSource
	products []models.Product
	byID     map[string]models.Product
}

func NewSnapshot(source ProductSource) *Snapshot {
	return &Snapshot{
		source: source,
		byID:   make(map[string]models.Product),
	}
}

// Refresh replaces the snapshot with the store's current product list. On
// failure the snapshot is cleared rather than left stale, so consumers render
// an explicit empty state.
func (s *Snapshot) Refresh(ctx context.Context) error {

	products, err := s.source.ListAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.products = nil
		s.byID = make(map[string]models.Product)
		metrics.IncCatalogRefresh("failure")

		return errors.RemoteUnavailableError("Failed to load the product catalog").WithError(err)
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s.products = products
	s.byID = byID
	metrics.IncCatalogRefresh("success")

	return nil
}

func (s *Snapshot) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]

	return p, ok
}

// List returns the products in store order.
func (s *Snapshot) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)

	return out
}

// Filter narrows the product list by category key and/or a case-insensitive
// search over name and description. Empty arguments match everything.
func (s *Snapshot) Filter(category, query string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)

	var out []models.Product

	for _, p := range s.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}

		out = append(out, p)
	}

	return out
}

// CategoryCounts tallies products per category key, in store order of first
// appearance. Products without a category are skipped.
func (s *Snapshot) CategoryCounts() []models.CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make(map[string]int)

	var counts []models.CategoryCount

	for _, p := range s.products {
		if p.Category == "" {
			continue
		}

		if i, ok := index[p.Category]; ok {
			counts[i].Count++

			continue
		}

		index[p.Category] = len(counts)
		counts = append(counts, models.CategoryCount{Category: p.Category, Count: 1})
	}

	return counts
}

func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products)
}
