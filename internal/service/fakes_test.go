package service

// In-memory repository fakes shared by the service tests. Each fake
// implements the corresponding repository interface; the compile-time
// assertions at the bottom keep them honest.

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/model"
	"github.com/manu1624/saborovejero/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mustID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// ── Products ──────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *fakeProductRepo) add(p model.Product) *model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = &p
	return &p
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CountByCategory(_ context.Context, category string) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.Category == category {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) SetStock(_ context.Context, id uuid.UUID, stock decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return errNotFound
	}
	p.CurrentStock = stock
	return nil
}

func (r *fakeProductRepo) ListBelowMin(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.CurrentStock.LessThanOrEqual(p.MinStock) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// ── Stock movements ───────────────────────────────────────────────────────────

type fakeStockMovementRepo struct {
	movements []model.StockMovement
}

func (r *fakeStockMovementRepo) Create(_ context.Context, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeStockMovementRepo) ListByProduct(_ context.Context, productID uuid.UUID, limit int) ([]model.StockMovement, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeStockMovementRepo) ListRecent(_ context.Context, limit int) ([]model.StockMovement, error) {
	out := append([]model.StockMovement(nil), r.movements...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Menu ──────────────────────────────────────────────────────────────────────

type fakeMenuRepo struct {
	items map[uuid.UUID]*model.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[uuid.UUID]*model.MenuItem)}
}

func (r *fakeMenuRepo) add(m model.MenuItem) *model.MenuItem {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items[m.ID] = &m
	return &m
}

func (r *fakeMenuRepo) Create(_ context.Context, m *model.MenuItem) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items[m.ID] = m
	return nil
}

func (r *fakeMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MenuItem, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (r *fakeMenuRepo) List(_ context.Context) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, m := range r.items {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeMenuRepo) Update(_ context.Context, m *model.MenuItem) error {
	existing, ok := r.items[m.ID]
	if !ok {
		return errNotFound
	}
	recipe := existing.Recipe
	r.items[m.ID] = m
	r.items[m.ID].Recipe = recipe
	return nil
}

func (r *fakeMenuRepo) ReplaceRecipe(_ context.Context, menuItemID uuid.UUID, recipe []model.RecipeIngredient) error {
	m, ok := r.items[menuItemID]
	if !ok {
		return errNotFound
	}
	m.Recipe = recipe
	return nil
}

func (r *fakeMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *fakeSaleRepo) List(_ context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if filter.Status != "" && filter.Status != "all" && s.Status != filter.Status {
			continue
		}
		if filter.Date != "" && s.CreatedAt.Format("2006-01-02") != filter.Date {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) LastNumberByPrefix(_ context.Context, prefix string) (string, error) {
	last := ""
	for _, s := range r.sales {
		if strings.HasPrefix(s.SaleNumber, prefix) && s.SaleNumber > last {
			last = s.SaleNumber
		}
	}
	return last, nil
}

func (r *fakeSaleRepo) ListCompletedByDate(_ context.Context, date string) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if s.Status == "completed" && s.CreatedAt.Format("2006-01-02") == date {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	s, ok := r.sales[id]
	if !ok {
		return errNotFound
	}
	s.Status = status
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

// ── Cash ──────────────────────────────────────────────────────────────────────

type fakeCashRepo struct {
	sessions  map[uuid.UUID]*model.CashRegister
	movements []model.CashMovement
}

func newFakeCashRepo() *fakeCashRepo {
	return &fakeCashRepo{sessions: make(map[uuid.UUID]*model.CashRegister)}
}

func (r *fakeCashRepo) CreateSession(_ context.Context, s *model.CashRegister) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeCashRepo) FindOpenSession(_ context.Context) (*model.CashRegister, error) {
	for _, s := range r.sessions {
		if s.Status == "open" {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeCashRepo) FindSessionByID(_ context.Context, id uuid.UUID) (*model.CashRegister, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *fakeCashRepo) FindClosedSessionByDate(_ context.Context, date string) (*model.CashRegister, error) {
	for _, s := range r.sessions {
		if s.Date == date && s.Status == "closed" {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeCashRepo) UpdateSession(_ context.Context, s *model.CashRegister) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeCashRepo) ListSessions(_ context.Context, page, limit int) ([]model.CashRegister, int64, error) {
	var out []model.CashRegister
	for _, s := range r.sessions {
		out = append(out, *s)
	}
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (r *fakeCashRepo) CreateMovement(_ context.Context, m *model.CashMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeCashRepo) ListMovements(_ context.Context, registerID uuid.UUID) ([]model.CashMovement, error) {
	var out []model.CashMovement
	for _, m := range r.movements {
		if m.CashRegisterID == registerID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ── Reports ───────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	reports map[uuid.UUID]*model.DailyReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uuid.UUID]*model.DailyReport)}
}

func (r *fakeReportRepo) Upsert(_ context.Context, report *model.DailyReport) error {
	for id, existing := range r.reports {
		if existing.Date == report.Date {
			delete(r.reports, id)
		}
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.CreatedAt = time.Now()
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DailyReport, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, errNotFound
	}
	return report, nil
}

func (r *fakeReportRepo) FindByDate(_ context.Context, date string) (*model.DailyReport, error) {
	for _, report := range r.reports {
		if report.Date == date {
			return report, nil
		}
	}
	return nil, nil
}

func (r *fakeReportRepo) List(_ context.Context, page, limit int) ([]model.DailyReport, int64, error) {
	var out []model.DailyReport
	for _, report := range r.reports {
		out = append(out, *report)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (r *fakeReportRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string, sentAt *time.Time) error {
	report, ok := r.reports[id]
	if !ok {
		return errNotFound
	}
	report.Status = status
	if sentAt != nil {
		report.EmailSentAt = sentAt
	}
	return nil
}

// ── Utensils ──────────────────────────────────────────────────────────────────

type fakeUtensilRepo struct {
	utensils map[uuid.UUID]*model.Utensil
}

func newFakeUtensilRepo() *fakeUtensilRepo {
	return &fakeUtensilRepo{utensils: make(map[uuid.UUID]*model.Utensil)}
}

func (r *fakeUtensilRepo) Create(_ context.Context, u *model.Utensil) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.utensils[u.ID] = u
	return nil
}

func (r *fakeUtensilRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Utensil, error) {
	u, ok := r.utensils[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *fakeUtensilRepo) List(_ context.Context) ([]model.Utensil, error) {
	var out []model.Utensil
	for _, u := range r.utensils {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *fakeUtensilRepo) Update(_ context.Context, u *model.Utensil) error {
	r.utensils[u.ID] = u
	return nil
}

func (r *fakeUtensilRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.utensils, id)
	return nil
}

func (r *fakeUtensilRepo) CountByCategory(_ context.Context, category string) (int64, error) {
	var count int64
	for _, u := range r.utensils {
		if u.Category == category {
			count++
		}
	}
	return count, nil
}

// ── Mailer ────────────────────────────────────────────────────────────────────

type fakeMailer struct {
	sent []string // recipient addresses
	err  error
}

func (m *fakeMailer) SendReport(_ context.Context, to, _ string, _ []byte) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

// Compile-time interface checks.
var (
	_ repository.ProductRepository       = (*fakeProductRepo)(nil)
	_ repository.StockMovementRepository = (*fakeStockMovementRepo)(nil)
	_ repository.MenuRepository          = (*fakeMenuRepo)(nil)
	_ repository.SaleRepository          = (*fakeSaleRepo)(nil)
	_ repository.CashRepository          = (*fakeCashRepo)(nil)
	_ repository.ReportRepository        = (*fakeReportRepo)(nil)
	_ repository.UtensilRepository       = (*fakeUtensilRepo)(nil)
)
