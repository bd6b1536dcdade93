package handler

import (
	"net/http"
	"strconv"

	"github.com/manu1624/saborovejero/internal/apierror"
	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct{ svc service.MenuService }

func NewMenuHandler(svc service.MenuService) *MenuHandler { return &MenuHandler{svc: svc} }

func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MenuHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *MenuHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateMenuItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Feasibility answers whether current stock covers N units of the item.
// Advisory only: it does not reserve ingredients.
func (h *MenuHandler) Feasibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil || quantity < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("quantity inválido"))
		return
	}
	c.JSON(http.StatusOK, dto.FeasibilityResponse{
		MenuItemID: id.String(),
		Quantity:   quantity,
		CanFulfill: h.svc.CanFulfill(c.Request.Context(), id, quantity),
	})
}
