package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/am-nutrition/storefront/internal/cart"
	"github.com/am-nutrition/storefront/internal/catalog"
	appErrors "github.com/am-nutrition/storefront/internal/errors"
	"github.com/am-nutrition/storefront/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	products []models.Product
}

func (s *staticSource) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

// memStore is an in-memory stand-in for the durable cart slot.
type memStore struct {
	lines   []models.CartLine
	found   bool
	saves   int
	saveErr error
	counter int64
}

func (s *memStore) SaveCart(ctx context.Context, lines []models.CartLine) error {
	if s.saveErr != nil {
		return s.saveErr
	}

	s.lines = append([]models.CartLine(nil), lines...)
	s.found = true
	s.saves++

	return nil
}

func (s *memStore) LoadCart(ctx context.Context) ([]models.CartLine, bool, error) {
	return s.lines, s.found, nil
}

func (s *memStore) IncrOrderCounter(ctx context.Context) (int64, error) {
	s.counter++

	return s.counter, nil
}

func newTestEngine(t *testing.T, products []models.Product, store *memStore) *cart.Engine {
	t.Helper()

	snapshot := catalog.NewSnapshot(&staticSource{products: products})
	require.NoError(t, snapshot.Refresh(context.Background()))

	return cart.NewEngine(snapshot, store)
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Whey Protein", Category: "proteins", Price: 1250, Quantity: 10},
		{ID: "p2", Name: "Creatine Monohydrate", Category: "performance", Price: 2500, Quantity: 2},
		{ID: "p3", Name: "Casein Protein", Category: "proteins", Price: 5000, Quantity: 0},
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores Persisted Lines", func(t *testing.T) {
		// Arrange
		store := &memStore{
			found: true,
			lines: []models.CartLine{
				{ProductID: "p1", Name: "Whey Protein", Price: 1250, Quantity: 2},
			},
		}
		engine := newTestEngine(t, testProducts(), store)

		// Act
		err := engine.Load(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, engine.Count())
		assert.Equal(t, float64(2500), engine.Total())
	})

	t.Run("Drops Non Positive Quantities", func(t *testing.T) {
		// Arrange
		store := &memStore{
			found: true,
			lines: []models.CartLine{
				{ProductID: "p1", Price: 1250, Quantity: 2},
				{ProductID: "p2", Price: 2500, Quantity: 0},
				{ProductID: "p3", Price: 5000, Quantity: -1},
			},
		}
		engine := newTestEngine(t, testProducts(), store)

		// Act
		err := engine.Load(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, engine.Lines(), 1)
		assert.Equal(t, "p1", engine.Lines()[0].ProductID)
	})

	t.Run("Empty Slot Leaves Empty Cart", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)

		// Act
		err := engine.Load(ctx)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, engine.Lines())
	})
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("New Line Starts At One", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)

		// Act
		err := engine.AddItem(ctx, "p1")

		// Assert
		require.NoError(t, err)
		require.Len(t, engine.Lines(), 1)
		line := engine.Lines()[0]
		assert.Equal(t, "p1", line.ProductID)
		assert.Equal(t, "Whey Protein", line.Name)
		assert.Equal(t, 1, line.Quantity)
		assert.Equal(t, 1, store.saves)
	})

	t.Run("Existing Line Increments", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)
		require.NoError(t, engine.AddItem(ctx, "p1"))

		// Act
		err := engine.AddItem(ctx, "p1")

		// Assert
		require.NoError(t, err)
		require.Len(t, engine.Lines(), 1)
		assert.Equal(t, 2, engine.Lines()[0].Quantity)
	})

	t.Run("Refuses Beyond Available Stock", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)
		require.NoError(t, engine.AddItem(ctx, "p2"))
		require.NoError(t, engine.AddItem(ctx, "p2"))
		savesBefore := store.saves

		// Act
		err := engine.AddItem(ctx, "p2")

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStockUnavailable, appErr.Code)
		assert.Equal(t, "Maximum available quantity reached", appErr.Message)
		assert.Equal(t, 2, engine.Lines()[0].Quantity)
		assert.Equal(t, savesBefore, store.saves)
	})

	t.Run("Refuses Out Of Stock Product", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)

		// Act
		err := engine.AddItem(ctx, "p3")

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStockUnavailable, appErr.Code)
		assert.Equal(t, "Product is out of stock", appErr.Message)
		assert.Empty(t, engine.Lines())
	})

	t.Run("Unknown Product", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)

		// Act
		err := engine.AddItem(ctx, "missing")

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Persistence Failure Surfaces As Internal", func(t *testing.T) {
		// Arrange
		store := &memStore{saveErr: errors.New("redis down")}
		engine := newTestEngine(t, testProducts(), store)

		// Act
		err := engine.AddItem(ctx, "p1")

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInternal, appErr.Code)
	})
}

func TestChangeQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies Positive Delta", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)
		require.NoError(t, engine.AddItem(ctx, "p1"))

		// Act
		err := engine.ChangeQuantity(ctx, "p1", 3)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, engine.Lines()[0].Quantity)
	})

	t.Run("Zero Or Less Removes The Line", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)
		require.NoError(t, engine.AddItem(ctx, "p1"))

		// Act
		err := engine.ChangeQuantity(ctx, "p1", -1)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, engine.Lines())
	})

	t.Run("Clamps To Stock And Still Reports", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)
		require.NoError(t, engine.AddItem(ctx, "p2"))

		// Act
		err := engine.ChangeQuantity(ctx, "p2", 5)

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStockUnavailable, appErr.Code)

		// Clamped state is both in memory and in the durable slot
		assert.Equal(t, 2, engine.Lines()[0].Quantity)
		require.Len(t, store.lines, 1)
		assert.Equal(t, 2, store.lines[0].Quantity)
	})

	t.Run("Vanished Product Clamps Away Entirely", func(t *testing.T) {
		// Arrange
		store := &memStore{
			found: true,
			lines: []models.CartLine{{ProductID: "gone", Price: 900, Quantity: 2}},
		}
		engine := newTestEngine(t, testProducts(), store)
		require.NoError(t, engine.Load(ctx))

		// Act
		err := engine.ChangeQuantity(ctx, "gone", 1)

		// Assert
		require.Error(t, err)
		assert.Empty(t, engine.Lines())
		assert.Empty(t, store.lines)
	})

	t.Run("Item Not In Cart", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)

		// Act
		err := engine.ChangeQuantity(ctx, "p1", 1)

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	engine := newTestEngine(t, testProducts(), store)
	require.NoError(t, engine.AddItem(ctx, "p1"))
	require.NoError(t, engine.AddItem(ctx, "p2"))

	// Act
	err := engine.RemoveItem(ctx, "p1")

	// Assert
	require.NoError(t, err)
	require.Len(t, engine.Lines(), 1)
	assert.Equal(t, "p2", engine.Lines()[0].ProductID)

	// Removing an absent item is a no-op, not an error
	require.NoError(t, engine.RemoveItem(ctx, "p1"))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	engine := newTestEngine(t, testProducts(), store)
	require.NoError(t, engine.AddItem(ctx, "p1"))

	// Act
	err := engine.Clear(ctx)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, engine.Lines())
	assert.Equal(t, 0, engine.Count())
	assert.Empty(t, store.lines)
}

// cartMutations reads the current value of the cart mutation counter for one
// operation from the default registry.
func cartMutations(t *testing.T, op string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "storefront_cart_mutations_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "op" && label.GetValue() == op {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}

	return 0
}

func TestMutationCounter(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts Only Persisted Mutations", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)
		before := cartMutations(t, "add")

		// Act
		require.NoError(t, engine.AddItem(ctx, "p1"))

		// Assert
		assert.Equal(t, before+1, cartMutations(t, "add"))

		// A failed persist must not count as a mutation
		store.saveErr = errors.New("redis down")
		require.Error(t, engine.AddItem(ctx, "p1"))
		assert.Equal(t, before+1, cartMutations(t, "add"))
	})

	t.Run("Removing An Absent Line Does Not Count", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)
		before := cartMutations(t, "remove")

		// Act
		require.NoError(t, engine.RemoveItem(ctx, "ghost"))

		// Assert
		assert.Equal(t, before, cartMutations(t, "remove"))

		require.NoError(t, engine.AddItem(ctx, "p1"))
		require.NoError(t, engine.RemoveItem(ctx, "p1"))
		assert.Equal(t, before+1, cartMutations(t, "remove"))
	})

	t.Run("Clearing An Empty Cart Does Not Count", func(t *testing.T) {
		// Arrange
		store := &memStore{}
		engine := newTestEngine(t, testProducts(), store)
		before := cartMutations(t, "clear")

		// Act
		require.NoError(t, engine.Clear(ctx))

		// Assert
		assert.Equal(t, before, cartMutations(t, "clear"))

		require.NoError(t, engine.AddItem(ctx, "p1"))
		require.NoError(t, engine.Clear(ctx))
		assert.Equal(t, before+1, cartMutations(t, "clear"))
	})
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	engine := newTestEngine(t, testProducts(), store)

	require.NoError(t, engine.AddItem(ctx, "p1"))
	require.NoError(t, engine.AddItem(ctx, "p1"))
	require.NoError(t, engine.AddItem(ctx, "p2"))

	assert.Equal(t, float64(1250*2+2500), engine.Total())
	assert.Equal(t, 3, engine.Count())

	state := engine.State()
	assert.Equal(t, engine.Total(), state.Total)
	assert.Equal(t, engine.Count(), state.Count)
	require.Len(t, state.Lines, 2)
}
