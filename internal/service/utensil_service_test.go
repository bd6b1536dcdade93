package service

import (
	"context"
	"testing"

	"github.com/manu1624/saborovejero/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUtensilService(t *testing.T) (UtensilService, *fakeUtensilRepo) {
	t.Helper()
	repo := newFakeUtensilRepo()
	return NewUtensilService(repo), repo
}

func TestCreateUtensilAssignsCode(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUtensilService(t)

	oven, err := svc.Create(ctx, dto.CreateUtensilRequest{
		Name: "Horno para pizza", Category: "Cocina", PurchasePrice: dec("1800000"),
		CurrentQuantity: 1, MinQuantity: 1, Condition: "excelente", Location: "Cocina",
	})
	require.NoError(t, err)
	assert.Equal(t, "COC-001", oven.Code)

	plate, err := svc.Create(ctx, dto.CreateUtensilRequest{
		Name: "Plato llano", Category: "Servicio", PurchasePrice: dec("12000"),
		CurrentQuantity: 40, MinQuantity: 20, Condition: "bueno", Location: "Barra",
	})
	require.NoError(t, err)
	assert.Equal(t, "SER-001", plate.Code)

	cup, err := svc.Create(ctx, dto.CreateUtensilRequest{
		Name: "Taza de café", Category: "Servicio", PurchasePrice: dec("9000"),
		CurrentQuantity: 24, MinQuantity: 12, Condition: "bueno", Location: "Barra",
	})
	require.NoError(t, err)
	assert.Equal(t, "SER-002", cup.Code)

	other, err := svc.Create(ctx, dto.CreateUtensilRequest{
		Name: "Extintor", Category: "Seguridad", PurchasePrice: dec("150000"),
		CurrentQuantity: 2, MinQuantity: 1, Condition: "bueno",
	})
	require.NoError(t, err)
	assert.Equal(t, "UTE-001", other.Code)
}

func TestAdjustQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUtensilService(t)

	plate, err := svc.Create(ctx, dto.CreateUtensilRequest{
		Name: "Plato llano", Category: "Servicio", PurchasePrice: dec("12000"),
		CurrentQuantity: 40, MinQuantity: 20, Condition: "bueno",
	})
	require.NoError(t, err)
	id := mustID(t, plate.ID)

	resp, err := svc.AdjustQuantity(ctx, id, dto.UtensilAdjustRequest{Quantity: 5, Operation: StockSubtract})
	require.NoError(t, err)
	assert.Equal(t, 35, resp.CurrentQuantity)

	resp, err = svc.AdjustQuantity(ctx, id, dto.UtensilAdjustRequest{Quantity: 10, Operation: StockAdd})
	require.NoError(t, err)
	assert.Equal(t, 45, resp.CurrentQuantity)
}

func TestAdjustQuantityFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUtensilService(t)

	cup, err := svc.Create(ctx, dto.CreateUtensilRequest{
		Name: "Taza de café", Category: "Servicio", PurchasePrice: dec("9000"),
		CurrentQuantity: 3, MinQuantity: 1, Condition: "bueno",
	})
	require.NoError(t, err)

	resp, err := svc.AdjustQuantity(ctx, mustID(t, cup.ID), dto.UtensilAdjustRequest{Quantity: 10, Operation: StockSubtract})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentQuantity)
}

func TestAdjustQuantityRejectsUnknownOperation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUtensilService(t)

	oven, err := svc.Create(ctx, dto.CreateUtensilRequest{
		Name: "Horno para pizza", Category: "Cocina", PurchasePrice: dec("1800000"),
		CurrentQuantity: 1, MinQuantity: 1, Condition: "excelente",
	})
	require.NoError(t, err)

	_, err = svc.AdjustQuantity(ctx, mustID(t, oven.ID), dto.UtensilAdjustRequest{Quantity: 1, Operation: "reset"})
	assert.Error(t, err)
}
