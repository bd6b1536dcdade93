package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/model"
	"github.com/manu1624/saborovejero/internal/repository"

	"github.com/google/uuid"
)

// productCodePrefixes maps menu categories to their code prefix. Unknown
// categories fall back to GEN.
var productCodePrefixes = map[string]string{
	"Pizzería":                      "PIZ",
	"Lasaña":                        "LAS",
	"Ensaladas de frutas + helados": "ENS",
	"Aromáticas / Cafés":            "CAF",
	"Micheladas / Cócteles":         "MIC",
}

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AdjustStock is the manual stock movement entry point (entrada/salida).
	AdjustStock(ctx context.Context, id uuid.UUID, req dto.StockAdjustRequest) (*dto.ProductResponse, error)
	// Alerts lists products at or below their minimum threshold.
	Alerts(ctx context.Context) ([]dto.StockAlertResponse, error)
}

type productService struct {
	repo  repository.ProductRepository
	stock StockService
}

func NewProductService(repo repository.ProductRepository, stock StockService) ProductService {
	return &productService{repo: repo, stock: stock}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code, err := s.nextCode(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Code:         code,
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Cost:         req.Cost,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		Location:     req.Location,
		Supplier:     req.Supplier,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

// nextCode generates a category-prefixed sequential code: PIZ-001, PIZ-002, …
// The sequence is derived from the category count, so deleting products can
// reuse numbers — same leniency as sale numbering.
func (s *productService) nextCode(ctx context.Context, category string) (string, error) {
	prefix, ok := productCodePrefixes[category]
	if !ok {
		prefix = "GEN"
	}
	count, err := s.repo.CountByCategory(ctx, category)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%03d", prefix, count+1), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Cost != nil {
		p.Cost = req.Cost
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if req.MaxStock != nil {
		p.MaxStock = req.MaxStock
	}
	if req.Location != nil {
		p.Location = req.Location
	}
	if req.Supplier != nil {
		p.Supplier = req.Supplier
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *productService) AdjustStock(ctx context.Context, id uuid.UUID, req dto.StockAdjustRequest) (*dto.ProductResponse, error) {
	_, err := s.stock.Adjust(ctx, StockAdjustment{
		ProductID: id,
		Quantity:  req.Quantity,
		Direction: req.Operation,
		Type:      "ajuste_manual",
		Reason:    req.Reason,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *productService) Alerts(ctx context.Context) ([]dto.StockAlertResponse, error) {
	products, err := s.repo.ListBelowMin(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.StockAlertResponse, 0, len(products))
	for _, p := range products {
		alerts = append(alerts, dto.StockAlertResponse{
			ProductID:    p.ID.String(),
			Code:         p.Code,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
			Unit:         p.Unit,
		})
	}
	return alerts, nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID.String(),
		Code:         p.Code,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		Cost:         p.Cost,
		Unit:         p.Unit,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		Location:     p.Location,
		Supplier:     p.Supplier,
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
