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

// utensilCodePrefixes maps equipment categories to their code prefix.
var utensilCodePrefixes = map[string]string{
	"Cocina":     "COC",
	"Servicio":   "SER",
	"Mobiliario": "MOB",
	"Limpieza":   "LIM",
	"Equipos":    "EQU",
}

type UtensilService interface {
	Create(ctx context.Context, req dto.CreateUtensilRequest) (*dto.UtensilResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UtensilResponse, error)
	List(ctx context.Context) ([]dto.UtensilResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUtensilRequest) (*dto.UtensilResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AdjustQuantity changes the unit count. Subtraction floors at zero, same
	// rule as product stock.
	AdjustQuantity(ctx context.Context, id uuid.UUID, req dto.UtensilAdjustRequest) (*dto.UtensilResponse, error)
}

type utensilService struct {
	repo repository.UtensilRepository
}

func NewUtensilService(repo repository.UtensilRepository) UtensilService {
	return &utensilService{repo: repo}
}

func (s *utensilService) Create(ctx context.Context, req dto.CreateUtensilRequest) (*dto.UtensilResponse, error) {
	prefix, ok := utensilCodePrefixes[req.Category]
	if !ok {
		prefix = "UTE"
	}
	count, err := s.repo.CountByCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	u := &model.Utensil{
		Code:            fmt.Sprintf("%s-%03d", prefix, count+1),
		Name:            req.Name,
		Category:        req.Category,
		PurchasePrice:   req.PurchasePrice,
		CurrentQuantity: req.CurrentQuantity,
		MinQuantity:     req.MinQuantity,
		Condition:       req.Condition,
		Location:        req.Location,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return utensilToResponse(u), nil
}

func (s *utensilService) Get(ctx context.Context, id uuid.UUID) (*dto.UtensilResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("utensilio no encontrado")
	}
	return utensilToResponse(u), nil
}

func (s *utensilService) List(ctx context.Context) ([]dto.UtensilResponse, error) {
	utensils, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UtensilResponse, 0, len(utensils))
	for i := range utensils {
		out = append(out, *utensilToResponse(&utensils[i]))
	}
	return out, nil
}

func (s *utensilService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUtensilRequest) (*dto.UtensilResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("utensilio no encontrado")
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Category != nil {
		u.Category = *req.Category
	}
	if req.PurchasePrice != nil {
		u.PurchasePrice = *req.PurchasePrice
	}
	if req.MinQuantity != nil {
		u.MinQuantity = *req.MinQuantity
	}
	if req.Condition != nil {
		u.Condition = *req.Condition
	}
	if req.Location != nil {
		u.Location = *req.Location
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return utensilToResponse(u), nil
}

func (s *utensilService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *utensilService) AdjustQuantity(ctx context.Context, id uuid.UUID, req dto.UtensilAdjustRequest) (*dto.UtensilResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("utensilio no encontrado")
	}

	switch req.Operation {
	case StockAdd:
		u.CurrentQuantity += req.Quantity
	case StockSubtract:
		u.CurrentQuantity -= req.Quantity
		if u.CurrentQuantity < 0 {
			u.CurrentQuantity = 0
		}
	default:
		return nil, errors.New("operación inválida: debe ser add o subtract")
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return utensilToResponse(u), nil
}

func utensilToResponse(u *model.Utensil) *dto.UtensilResponse {
	return &dto.UtensilResponse{
		ID:              u.ID.String(),
		Code:            u.Code,
		Name:            u.Name,
		Category:        u.Category,
		PurchasePrice:   u.PurchasePrice,
		CurrentQuantity: u.CurrentQuantity,
		MinQuantity:     u.MinQuantity,
		Condition:       u.Condition,
		Location:        u.Location,
		UpdatedAt:       u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
