package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/repairbot/pkg/domain"
)

func TestCatalogRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	stock := 4
	for _, it := range []*domain.Item{
		{Name: "Frontal A13", Price: 250},
		{Name: "Frontal A13 Premium", Price: 320},
		{Name: "Bateria iPhone 11", Price: 180, Stock: &stock},
		{Name: "Conector de Carga", Price: 90},
	} {
		require.NoError(t, repos.Catalog.AddItem(ctx, it))
		assert.NotZero(t, it.ID)
	}

	t.Run("duplicate name", func(t *testing.T) {
		err := repos.Catalog.AddItem(ctx, &domain.Item{Name: "frontal a13", Price: 1})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		items, err := repos.Catalog.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "Bateria iPhone 11", items[0].Name)
		require.NotNil(t, items[0].Stock)
		assert.Equal(t, 4, *items[0].Stock)
		assert.Nil(t, items[1].Stock)
	})

	t.Run("find", func(t *testing.T) {
		item, err := repos.Catalog.FindItem(ctx, "FRONTAL A13")
		require.NoError(t, err)
		assert.Equal(t, "Frontal A13", item.Name)

		item, err = repos.Catalog.FindItem(ctx, "frontal")
		require.NoError(t, err)
		assert.Equal(t, "Frontal A13", item.Name, "shortest containing name")

		item, err = repos.Catalog.FindItem(ctx, "quanto custa o conector de carga do meu celular")
		require.NoError(t, err)
		assert.Equal(t, "Conector de Carga", item.Name, "name contained in query")

		_, err = repos.Catalog.FindItem(ctx, "tela s20")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repos.Catalog.FindItem(ctx, "  ")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("similar", func(t *testing.T) {
		items, err := repos.Catalog.SimilarItems(ctx, "frontal a10", 3)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Frontal A13", items[0].Name)

		items, err = repos.Catalog.SimilarItems(ctx, "bateria premium frontal", 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Frontal A13 Premium", items[0].Name)

		items, err = repos.Catalog.SimilarItems(ctx, "xyz", 3)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("update price and stock", func(t *testing.T) {
		require.NoError(t, repos.Catalog.UpdatePrice(ctx, "frontal a13", 260.5))
		newStock := 2
		require.NoError(t, repos.Catalog.UpdateStock(ctx, "Frontal A13", &newStock))

		item, err := repos.Catalog.GetItem(ctx, "Frontal A13")
		require.NoError(t, err)
		assert.InDelta(t, 260.5, item.Price, 0.001)
		require.NotNil(t, item.Stock)
		assert.Equal(t, 2, *item.Stock)

		require.NoError(t, repos.Catalog.UpdateStock(ctx, "Frontal A13", nil))
		item, err = repos.Catalog.GetItem(ctx, "Frontal A13")
		require.NoError(t, err)
		assert.Nil(t, item.Stock)

		assert.ErrorIs(t, repos.Catalog.UpdatePrice(ctx, "nope", 10), ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, repos.Catalog.RemoveItem(ctx, "CONECTOR DE CARGA"))
		assert.ErrorIs(t, repos.Catalog.RemoveItem(ctx, "Conector de Carga"), ErrNotFound)
		_, err := repos.Catalog.GetItem(ctx, "Conector de Carga")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-ascii names ignore case", func(t *testing.T) {
		require.NoError(t, repos.Catalog.AddItem(ctx, &domain.Item{Name: "Tela Ótima", Price: 400}))
		assert.ErrorIs(t, repos.Catalog.AddItem(ctx, &domain.Item{Name: "tela ótima", Price: 1}), ErrDuplicate)
		assert.ErrorIs(t, repos.Catalog.AddItem(ctx, &domain.Item{Name: "TELA ÓTIMA", Price: 1}), ErrDuplicate)

		item, err := repos.Catalog.GetItem(ctx, "tela ótima")
		require.NoError(t, err)
		assert.Equal(t, "Tela Ótima", item.Name, "display name keeps its case")

		require.NoError(t, repos.Catalog.UpdatePrice(ctx, "TELA ÓTIMA", 450))
		item, err = repos.Catalog.FindItem(ctx, "tela ótima")
		require.NoError(t, err)
		assert.InDelta(t, 450, item.Price, 0.001)

		require.NoError(t, repos.Catalog.RemoveItem(ctx, "tela ótima"))
		_, err = repos.Catalog.GetItem(ctx, "Tela Ótima")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
