package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/manu1624/saborovejero/internal/apierror"
	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/middleware"
	"github.com/manu1624/saborovejero/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CashHandler struct{ svc service.CashService }

func NewCashHandler(svc service.CashService) *CashHandler { return &CashHandler{svc: svc} }

// Open starts a register session. Fails with 409 when one is already open.
func (h *CashHandler) Open(c *gin.Context) {
	var req dto.OpenRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Open(c.Request.Context(), req, claims.Username)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrRegisterAlreadyOpen) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Close reconciles the counted amount and closes the open session.
// Report generation happens asynchronously afterwards.
func (h *CashHandler) Close(c *gin.Context) {
	var req dto.CloseRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Close(c.Request.Context(), req, claims.Username)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNoOpenRegister) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Current returns the open session, or 404 when the register is closed.
func (h *CashHandler) Current(c *gin.Context) {
	resp, err := h.svc.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("No hay caja abierta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Balance returns the live ledger-derived balance of the open session.
func (h *CashHandler) Balance(c *gin.Context) {
	resp, err := h.svc.CurrentBalance(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrNoOpenRegister) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordMovement appends a manual movement to the open session.
func (h *CashHandler) RecordMovement(c *gin.Context) {
	var req dto.ManualMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RecordMovement(c.Request.Context(), req); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNoOpenRegister) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CashHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Sesión de caja no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movements lists the append-only movement ledger of one session.
func (h *CashHandler) Movements(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Movements(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// History returns a paginated list of register sessions.
func (h *CashHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	resp, err := h.svc.History(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
