package service

import (
	"context"
	"testing"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService(t *testing.T) (MenuService, *fakeMenuRepo, *fakeProductRepo) {
	t.Helper()
	menus := newFakeMenuRepo()
	products := newFakeProductRepo()
	return NewMenuService(menus, products), menus, products
}

func TestCanFulfillAgainstStock(t *testing.T) {
	ctx := context.Background()
	svc, menus, products := newMenuService(t)

	flour := products.add(model.Product{Code: "PIZ-001", Name: "Harina de trigo", CurrentStock: dec("1")})
	pizza := menus.add(model.MenuItem{
		Name: "Pizza Margarita Personal", Price: dec("18000"), IsAvailable: true,
		Recipe: []model.RecipeIngredient{{ProductID: flour.ID, Quantity: dec("0.15"), Unit: "kg"}},
	})

	// 0.15 kg per unit against 1 kg of flour: 6 units fit, 7 don't.
	assert.True(t, svc.CanFulfill(ctx, pizza.ID, 5))
	assert.True(t, svc.CanFulfill(ctx, pizza.ID, 6))
	assert.False(t, svc.CanFulfill(ctx, pizza.ID, 7))
	assert.False(t, svc.CanFulfill(ctx, pizza.ID, 8))
}

func TestCanFulfillShortOnOneIngredient(t *testing.T) {
	ctx := context.Background()
	svc, menus, products := newMenuService(t)

	flour := products.add(model.Product{Name: "Harina de trigo", CurrentStock: dec("10")})
	cheese := products.add(model.Product{Name: "Queso mozzarella", CurrentStock: dec("0.05")})
	pizza := menus.add(model.MenuItem{
		Name: "Pizza Margarita Personal", IsAvailable: true,
		Recipe: []model.RecipeIngredient{
			{ProductID: flour.ID, Quantity: dec("0.15"), Unit: "kg"},
			{ProductID: cheese.ID, Quantity: dec("0.1"), Unit: "kg"},
		},
	})

	assert.False(t, svc.CanFulfill(ctx, pizza.ID, 1))
}

func TestCanFulfillUnknownItem(t *testing.T) {
	svc, _, _ := newMenuService(t)
	assert.False(t, svc.CanFulfill(context.Background(), uuid.New(), 1))
}

func TestRequiredConsumptionScalesRecipe(t *testing.T) {
	ctx := context.Background()
	svc, menus, products := newMenuService(t)

	flour := products.add(model.Product{Name: "Harina de trigo"})
	cheese := products.add(model.Product{Name: "Queso mozzarella"})
	pizza := menus.add(model.MenuItem{
		Name: "Pizza Margarita Personal", IsAvailable: true,
		Recipe: []model.RecipeIngredient{
			{ProductID: flour.ID, Quantity: dec("0.15"), Unit: "kg"},
			{ProductID: cheese.ID, Quantity: dec("0.1"), Unit: "kg"},
		},
	})

	demands, err := svc.RequiredConsumption(ctx, pizza.ID, 4)
	require.NoError(t, err)
	require.Len(t, demands, 2)
	assert.Equal(t, flour.ID, demands[0].ProductID)
	assert.True(t, demands[0].Quantity.Equal(dec("0.6")))
	assert.Equal(t, cheese.ID, demands[1].ProductID)
	assert.True(t, demands[1].Quantity.Equal(dec("0.4")))
}

func TestCreateRejectsInvalidRecipe(t *testing.T) {
	ctx := context.Background()
	svc, _, products := newMenuService(t)
	flour := products.add(model.Product{Name: "Harina de trigo"})

	_, err := svc.Create(ctx, dto.CreateMenuItemRequest{
		Name: "Pizza", Category: "Pizzería", Price: dec("18000"),
		Recipe: []dto.RecipeIngredientRequest{{ProductID: "no-es-uuid", Quantity: dec("0.15"), Unit: "kg"}},
	})
	assert.Error(t, err)

	_, err = svc.Create(ctx, dto.CreateMenuItemRequest{
		Name: "Pizza", Category: "Pizzería", Price: dec("18000"),
		Recipe: []dto.RecipeIngredientRequest{{ProductID: flour.ID.String(), Quantity: dec("0"), Unit: "kg"}},
	})
	assert.Error(t, err)
}

func TestUpdateReplacesRecipe(t *testing.T) {
	ctx := context.Background()
	svc, menus, products := newMenuService(t)

	flour := products.add(model.Product{Name: "Harina de trigo"})
	cheese := products.add(model.Product{Name: "Queso mozzarella"})
	pizza := menus.add(model.MenuItem{
		Name: "Pizza Margarita Personal", Price: dec("18000"), IsAvailable: true,
		Recipe: []model.RecipeIngredient{{ProductID: flour.ID, Quantity: dec("0.15"), Unit: "kg"}},
	})

	newRecipe := []dto.RecipeIngredientRequest{
		{ProductID: flour.ID.String(), Quantity: dec("0.2"), Unit: "kg"},
		{ProductID: cheese.ID.String(), Quantity: dec("0.1"), Unit: "kg"},
	}
	resp, err := svc.Update(ctx, pizza.ID, dto.UpdateMenuItemRequest{Recipe: &newRecipe})
	require.NoError(t, err)
	require.Len(t, resp.Recipe, 2)
	assert.True(t, resp.Recipe[0].Quantity.Equal(dec("0.2")))
}
