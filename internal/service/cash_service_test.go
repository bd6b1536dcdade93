package service

import (
	"context"
	"testing"
	"time"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCashService(t *testing.T) (CashService, *fakeCashRepo) {
	t.Helper()
	repo := newFakeCashRepo()
	return NewCashService(repo, nil), repo
}

func TestOpenCreatesSessionAndOpeningDeposit(t *testing.T) {
	ctx := context.Background()
	svc, repo := newCashService(t)

	resp, err := svc.Open(ctx, dto.OpenRegisterRequest{OpeningAmount: dec("100000")}, "cajero1")
	require.NoError(t, err)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, "cajero1", resp.OpenedBy)
	assert.True(t, resp.OpeningAmount.Equal(dec("100000")))

	require.Len(t, repo.movements, 1)
	opening := repo.movements[0]
	assert.Equal(t, MovementDeposit, opening.Type)
	assert.Equal(t, "Apertura de caja", opening.Description)
	assert.Equal(t, "Apertura", opening.Category)
	assert.True(t, opening.Amount.Equal(dec("100000")))
}

func TestOpenFailsWhenAlreadyOpen(t *testing.T) {
	ctx := context.Background()
	svc, repo := newCashService(t)

	_, err := svc.Open(ctx, dto.OpenRegisterRequest{OpeningAmount: dec("100000")}, "cajero1")
	require.NoError(t, err)

	_, err = svc.Open(ctx, dto.OpenRegisterRequest{OpeningAmount: dec("50000")}, "cajero2")
	assert.ErrorIs(t, err, ErrRegisterAlreadyOpen)
	assert.Len(t, repo.sessions, 1)
	assert.Len(t, repo.movements, 1)
}

func TestCloseReconcilesAgainstLedger(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCashService(t)

	_, err := svc.Open(ctx, dto.OpenRegisterRequest{OpeningAmount: dec("100000")}, "cajero1")
	require.NoError(t, err)
	require.NoError(t, svc.PostSaleIncome(ctx, uuid.New(), "20260831-001", "efectivo", dec("18000")))

	resp, err := svc.Close(ctx, dto.CloseRegisterRequest{ClosingAmount: dec("118000")}, "cajero1")
	require.NoError(t, err)
	assert.Equal(t, "closed", resp.Status)
	require.NotNil(t, resp.ExpectedAmount)
	require.NotNil(t, resp.Difference)
	assert.True(t, resp.ExpectedAmount.Equal(dec("118000")))
	assert.True(t, resp.Difference.IsZero())
	require.NotNil(t, resp.ClosedBy)
	assert.Equal(t, "cajero1", *resp.ClosedBy)
}

func TestCloseReportsShortDrawer(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCashService(t)

	_, err := svc.Open(ctx, dto.OpenRegisterRequest{OpeningAmount: dec("100000")}, "cajero1")
	require.NoError(t, err)

	resp, err := svc.Close(ctx, dto.CloseRegisterRequest{ClosingAmount: dec("97000")}, "cajero1")
	require.NoError(t, err)
	require.NotNil(t, resp.Difference)
	assert.True(t, resp.Difference.Equal(dec("-3000")))
}

func TestCloseWithoutOpenSession(t *testing.T) {
	svc, _ := newCashService(t)
	_, err := svc.Close(context.Background(), dto.CloseRegisterRequest{ClosingAmount: dec("0")}, "cajero1")
	assert.ErrorIs(t, err, ErrNoOpenRegister)
}

func TestBalanceAddsAndSubtractsByType(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCashService(t)

	_, err := svc.Open(ctx, dto.OpenRegisterRequest{OpeningAmount: dec("100000")}, "cajero1")
	require.NoError(t, err)

	movements := []dto.ManualMovementRequest{
		{Type: MovementIncome, Amount: dec("18000"), Description: "Venta mostrador", Category: "Ventas"},
		{Type: MovementExpense, Amount: dec("5000"), Description: "Compra de hielo", Category: "Insumos"},
		{Type: MovementWithdrawal, Amount: dec("2000"), Description: "Retiro a banco", Category: "Retiros"},
		{Type: MovementDeposit, Amount: dec("1000"), Description: "Base adicional", Category: "Apertura"},
	}
	for _, m := range movements {
		require.NoError(t, svc.RecordMovement(ctx, m))
	}

	// 100000 + 18000 - 5000 - 2000 + 1000
	balance, err := svc.CurrentBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(dec("112000")), "got %s", balance.Balance)
}

func TestBalanceWithoutOpenSession(t *testing.T) {
	svc, _ := newCashService(t)
	_, err := svc.CurrentBalance(context.Background())
	assert.ErrorIs(t, err, ErrNoOpenRegister)
}

func TestRecordMovementRequiresOpenSession(t *testing.T) {
	svc, _ := newCashService(t)
	err := svc.RecordMovement(context.Background(), dto.ManualMovementRequest{
		Type: MovementExpense, Amount: dec("5000"), Description: "Compra de hielo", Category: "Insumos",
	})
	assert.ErrorIs(t, err, ErrNoOpenRegister)
}

func TestCurrentNilWhenClosed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCashService(t)

	resp, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, resp)

	_, err = svc.Open(ctx, dto.OpenRegisterRequest{OpeningAmount: dec("100000")}, "cajero1")
	require.NoError(t, err)
	_, err = svc.Close(ctx, dto.CloseRegisterRequest{ClosingAmount: dec("100000")}, "cajero1")
	require.NoError(t, err)

	resp, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestMovementTimestampsRenderedInUTC(t *testing.T) {
	ctx := context.Background()
	svc, repo := newCashService(t)

	// A movement stamped in a non-UTC zone must render as the same instant in
	// UTC, not get its wall-clock time relabeled with a Z suffix.
	registerID := uuid.New()
	bogota := time.FixedZone("COT", -5*3600)
	repo.movements = append(repo.movements, model.CashMovement{
		ID:             uuid.New(),
		CashRegisterID: registerID,
		Type:           MovementIncome,
		Amount:         dec("18000"),
		CreatedAt:      time.Date(2026, 8, 31, 10, 0, 0, 0, bogota),
	})

	out, err := svc.Movements(ctx, registerID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2026-08-31T15:00:00Z", out[0].CreatedAt)
}

func TestPostSaleIncomeMovement(t *testing.T) {
	ctx := context.Background()
	svc, repo := newCashService(t)

	_, err := svc.Open(ctx, dto.OpenRegisterRequest{OpeningAmount: dec("100000")}, "cajero1")
	require.NoError(t, err)

	saleID := uuid.New()
	require.NoError(t, svc.PostSaleIncome(ctx, saleID, "20260831-001", "efectivo", dec("18000")))

	require.Len(t, repo.movements, 2) // opening deposit + sale income
	income := repo.movements[1]
	assert.Equal(t, MovementIncome, income.Type)
	assert.Equal(t, "Venta #20260831-001 - efectivo", income.Description)
	assert.Equal(t, "Ventas", income.Category)
	require.NotNil(t, income.RelatedSaleID)
	assert.Equal(t, saleID, *income.RelatedSaleID)
}
