package handlers_test

import (
	"context"
	"testing"

	"github.com/am-nutrition/storefront/internal/cart"
	"github.com/am-nutrition/storefront/internal/catalog"
	"github.com/am-nutrition/storefront/internal/models"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	products []models.Product
}

func (s *staticSource) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

type memStore struct {
	lines []models.CartLine
	found bool
}

func (s *memStore) SaveCart(ctx context.Context, lines []models.CartLine) error {
	s.lines = append([]models.CartLine(nil), lines...)
	s.found = true

	return nil
}

func (s *memStore) LoadCart(ctx context.Context) ([]models.CartLine, bool, error) {
	return s.lines, s.found, nil
}

func (s *memStore) IncrOrderCounter(ctx context.Context) (int64, error) {
	return 1, nil
}

func storefrontProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Whey Protein", Category: "proteins", Description: "Vanilla flavour", Price: 4500, Quantity: 10},
		{ID: "p2", Name: "Creatine Monohydrate", Category: "performance", Description: "Pure powder", Price: 2500, Quantity: 1},
		{ID: "p3", Name: "Casein Protein", Category: "proteins", Description: "Slow release", Price: 5000, Quantity: 0},
	}
}

func newTestSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()

	snapshot := catalog.NewSnapshot(&staticSource{products: storefrontProducts()})
	require.NoError(t, snapshot.Refresh(context.Background()))

	return snapshot
}

func newTestEngine(t *testing.T) *cart.Engine {
	t.Helper()

	return cart.NewEngine(newTestSnapshot(t), &memStore{})
}
