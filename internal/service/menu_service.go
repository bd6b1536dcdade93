package service

import (
	"context"
	"errors"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/model"
	"github.com/manu1624/saborovejero/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientDemand is the resolved per-product consumption of a sale line.
type IngredientDemand struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
}

// MenuService manages sellable items and resolves their recipes against stock.
type MenuService interface {
	Create(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MenuItemResponse, error)
	List(ctx context.Context) ([]dto.MenuItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// CanFulfill reports whether current stock covers quantity units of the
	// item. Advisory only: it does not reserve stock. False when the menu item
	// is unknown or any ingredient is short.
	CanFulfill(ctx context.Context, menuItemID uuid.UUID, quantity int) bool

	// RequiredConsumption resolves the recipe into total per-product demand
	// for quantity units sold.
	RequiredConsumption(ctx context.Context, menuItemID uuid.UUID, quantity int) ([]IngredientDemand, error)
}

type menuService struct {
	repo     repository.MenuRepository
	products repository.ProductRepository
}

func NewMenuService(repo repository.MenuRepository, products repository.ProductRepository) MenuService {
	return &menuService{repo: repo, products: products}
}

func (s *menuService) Create(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	recipe, err := recipeFromRequest(req.Recipe)
	if err != nil {
		return nil, err
	}

	item := &model.MenuItem{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Description:     req.Description,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
		Recipe:          recipe,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return menuItemToResponse(item), nil
}

func (s *menuService) Get(ctx context.Context, id uuid.UUID) (*dto.MenuItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto del menú no encontrado")
	}
	return menuItemToResponse(item), nil
}

func (s *menuService) List(ctx context.Context) ([]dto.MenuItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *menuItemToResponse(&items[i]))
	}
	return out, nil
}

func (s *menuService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto del menú no encontrado")
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if req.Recipe != nil {
		recipe, err := recipeFromRequest(*req.Recipe)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceRecipe(ctx, id, recipe); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *menuService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *menuService) CanFulfill(ctx context.Context, menuItemID uuid.UUID, quantity int) bool {
	item, err := s.repo.FindByID(ctx, menuItemID)
	if err != nil {
		return false
	}
	qty := decimal.NewFromInt(int64(quantity))
	for _, ing := range item.Recipe {
		p, err := s.products.FindByID(ctx, ing.ProductID)
		if err != nil {
			return false
		}
		if p.CurrentStock.LessThan(ing.Quantity.Mul(qty)) {
			return false
		}
	}
	return true
}

func (s *menuService) RequiredConsumption(ctx context.Context, menuItemID uuid.UUID, quantity int) ([]IngredientDemand, error) {
	item, err := s.repo.FindByID(ctx, menuItemID)
	if err != nil {
		return nil, errors.New("producto del menú no encontrado")
	}
	qty := decimal.NewFromInt(int64(quantity))
	demands := make([]IngredientDemand, 0, len(item.Recipe))
	for _, ing := range item.Recipe {
		demands = append(demands, IngredientDemand{
			ProductID: ing.ProductID,
			Quantity:  ing.Quantity.Mul(qty),
		})
	}
	return demands, nil
}

func recipeFromRequest(reqs []dto.RecipeIngredientRequest) ([]model.RecipeIngredient, error) {
	recipe := make([]model.RecipeIngredient, 0, len(reqs))
	for _, r := range reqs {
		pid, err := uuid.Parse(r.ProductID)
		if err != nil {
			return nil, errors.New("product_id inválido en la receta")
		}
		if !r.Quantity.IsPositive() {
			return nil, errors.New("la cantidad de cada ingrediente debe ser positiva")
		}
		recipe = append(recipe, model.RecipeIngredient{
			ProductID: pid,
			Quantity:  r.Quantity,
			Unit:      r.Unit,
		})
	}
	return recipe, nil
}

func menuItemToResponse(m *model.MenuItem) *dto.MenuItemResponse {
	recipe := make([]dto.RecipeIngredientResponse, 0, len(m.Recipe))
	for _, ing := range m.Recipe {
		recipe = append(recipe, dto.RecipeIngredientResponse{
			ProductID: ing.ProductID.String(),
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
		})
	}
	return &dto.MenuItemResponse{
		ID:              m.ID.String(),
		Name:            m.Name,
		Category:        m.Category,
		Price:           m.Price,
		Description:     m.Description,
		IsAvailable:     m.IsAvailable,
		PreparationTime: m.PreparationTime,
		Recipe:          recipe,
	}
}
