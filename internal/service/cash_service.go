package service

import (
	"context"
	"time"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/model"
	"github.com/manu1624/saborovejero/internal/repository"
	"github.com/manu1624/saborovejero/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Cash movement types. Amount is always positive; the type decides the effect
// on the balance.
const (
	MovementIncome     = "income"
	MovementExpense    = "expense"
	MovementWithdrawal = "withdrawal"
	MovementDeposit    = "deposit"
)

// CashService is the register session state machine:
//
//	Closed ──Open──▶ Open ──Close──▶ Closed (terminal for that session)
//
// At most one session is open store-wide. Guard failures return sentinel
// errors and leave the store untouched.
type CashService interface {
	Open(ctx context.Context, req dto.OpenRegisterRequest, openedBy string) (*dto.RegisterResponse, error)
	// Close reconciles the counted amount against the ledger-derived expected
	// amount and flips the session to closed. The daily report is generated
	// asynchronously afterwards — callers must not assume it exists right away.
	Close(ctx context.Context, req dto.CloseRegisterRequest, closedBy string) (*dto.RegisterResponse, error)
	// Current returns the open session, or nil when the register is closed.
	Current(ctx context.Context) (*dto.RegisterResponse, error)
	// CurrentBalance is the live ledger balance of the open session, computed
	// with the same add/subtract-by-type rule as the close-time expected amount.
	CurrentBalance(ctx context.Context) (*dto.BalanceResponse, error)
	// RecordMovement appends a manual movement to the open session.
	RecordMovement(ctx context.Context, req dto.ManualMovementRequest) error
	// PostSaleIncome appends the income movement backing a recorded sale.
	PostSaleIncome(ctx context.Context, saleID uuid.UUID, saleNumber, paymentMethod string, amount decimal.Decimal) error
	Movements(ctx context.Context, registerID uuid.UUID) ([]dto.MovementResponse, error)
	Get(ctx context.Context, registerID uuid.UUID) (*dto.RegisterResponse, error)
	History(ctx context.Context, page, limit int) (*dto.RegisterListResponse, error)
}

type cashService struct {
	repo       repository.CashRepository
	dispatcher *worker.Dispatcher
}

// NewCashService builds the session manager. dispatcher may be nil (tests):
// report generation is then left to explicit calls.
func NewCashService(repo repository.CashRepository, dispatcher *worker.Dispatcher) CashService {
	return &cashService{repo: repo, dispatcher: dispatcher}
}

func (s *cashService) Open(ctx context.Context, req dto.OpenRegisterRequest, openedBy string) (*dto.RegisterResponse, error) {
	existing, err := s.repo.FindOpenSession(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRegisterAlreadyOpen
	}

	now := time.Now()
	session := &model.CashRegister{
		Date:          now.Format("2006-01-02"),
		OpeningAmount: req.OpeningAmount,
		OpeningTime:   now,
		OpenedBy:      openedBy,
		Status:        "open",
		Notes:         req.Notes,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	// The opening float enters the ledger as a deposit so that the close-time
	// expected amount reconstructs entirely from movements.
	opening := &model.CashMovement{
		CashRegisterID: session.ID,
		Type:           MovementDeposit,
		Amount:         req.OpeningAmount,
		Description:    "Apertura de caja",
		Category:       "Apertura",
	}
	if err := s.repo.CreateMovement(ctx, opening); err != nil {
		return nil, err
	}

	return registerToResponse(session), nil
}

func (s *cashService) Close(ctx context.Context, req dto.CloseRegisterRequest, closedBy string) (*dto.RegisterResponse, error) {
	session, err := s.repo.FindOpenSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoOpenRegister
	}

	movements, err := s.repo.ListMovements(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	expected := ledgerBalance(movements)
	difference := req.ClosingAmount.Sub(expected)

	now := time.Now()
	session.ClosingAmount = &req.ClosingAmount
	session.ClosingTime = &now
	session.ClosedBy = &closedBy
	session.ExpectedAmount = &expected
	session.Difference = &difference
	session.Status = "closed"
	if req.Notes != nil {
		session.Notes = req.Notes
	}

	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	// Fire-and-forget daily report generation. The report is observable by
	// polling GET /reports?date= — absent until the worker runs.
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueReport(ctx, worker.ReportJobPayload{Date: session.Date}); err != nil {
			log.Error().Err(err).Str("date", session.Date).Msg("failed to enqueue daily report job")
		}
	}

	return registerToResponse(session), nil
}

func (s *cashService) Current(ctx context.Context) (*dto.RegisterResponse, error) {
	session, err := s.repo.FindOpenSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return registerToResponse(session), nil
}

func (s *cashService) CurrentBalance(ctx context.Context) (*dto.BalanceResponse, error) {
	session, err := s.repo.FindOpenSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoOpenRegister
	}
	movements, err := s.repo.ListMovements(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		RegisterID: session.ID.String(),
		Balance:    ledgerBalance(movements),
	}, nil
}

func (s *cashService) RecordMovement(ctx context.Context, req dto.ManualMovementRequest) error {
	session, err := s.repo.FindOpenSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrNoOpenRegister
	}
	mov := &model.CashMovement{
		CashRegisterID: session.ID,
		Type:           req.Type,
		Amount:         req.Amount,
		Description:    req.Description,
		Category:       req.Category,
	}
	return s.repo.CreateMovement(ctx, mov)
}

func (s *cashService) PostSaleIncome(ctx context.Context, saleID uuid.UUID, saleNumber, paymentMethod string, amount decimal.Decimal) error {
	session, err := s.repo.FindOpenSession(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrNoOpenRegister
	}
	mov := &model.CashMovement{
		CashRegisterID: session.ID,
		Type:           MovementIncome,
		Amount:         amount,
		Description:    "Venta #" + saleNumber + " - " + paymentMethod,
		Category:       "Ventas",
		RelatedSaleID:  &saleID,
	}
	return s.repo.CreateMovement(ctx, mov)
}

func (s *cashService) Movements(ctx context.Context, registerID uuid.UUID) ([]dto.MovementResponse, error) {
	movements, err := s.repo.ListMovements(ctx, registerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		resp := dto.MovementResponse{
			ID:          m.ID.String(),
			Type:        m.Type,
			Amount:      m.Amount,
			Description: m.Description,
			Category:    m.Category,
			CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
		}
		if m.RelatedSaleID != nil {
			id := m.RelatedSaleID.String()
			resp.RelatedSaleID = &id
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *cashService) Get(ctx context.Context, registerID uuid.UUID) (*dto.RegisterResponse, error) {
	session, err := s.repo.FindSessionByID(ctx, registerID)
	if err != nil {
		return nil, err
	}
	return registerToResponse(session), nil
}

func (s *cashService) History(ctx context.Context, page, limit int) (*dto.RegisterListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	sessions, total, err := s.repo.ListSessions(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.RegisterResponse, 0, len(sessions))
	for i := range sessions {
		data = append(data, *registerToResponse(&sessions[i]))
	}
	return &dto.RegisterListResponse{Data: data, Total: total, Page: page, Limit: limit}, nil
}

// ledgerBalance reconstructs the theoretical cash balance from the movement
// ledger: income and deposit add, expense and withdrawal subtract. Sales
// influence the balance only through their posted income movement.
func ledgerBalance(movements []model.CashMovement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case MovementIncome, MovementDeposit:
			total = total.Add(m.Amount)
		case MovementExpense, MovementWithdrawal:
			total = total.Sub(m.Amount)
		}
	}
	return total
}

func registerToResponse(s *model.CashRegister) *dto.RegisterResponse {
	resp := &dto.RegisterResponse{
		ID:             s.ID.String(),
		Date:           s.Date,
		OpeningAmount:  s.OpeningAmount,
		OpeningTime:    s.OpeningTime.UTC().Format(time.RFC3339),
		OpenedBy:       s.OpenedBy,
		ClosingAmount:  s.ClosingAmount,
		ClosedBy:       s.ClosedBy,
		ExpectedAmount: s.ExpectedAmount,
		Difference:     s.Difference,
		Status:         s.Status,
		Notes:          s.Notes,
	}
	if s.ClosingTime != nil {
		t := s.ClosingTime.UTC().Format(time.RFC3339)
		resp.ClosingTime = &t
	}
	return resp
}
