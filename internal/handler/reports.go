package handler

import (
	"net/http"
	"strconv"

	"github.com/manu1624/saborovejero/internal/apierror"
	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/service"
	"github.com/manu1624/saborovejero/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportsHandler struct {
	svc        service.ReportService
	dispatcher *worker.Dispatcher
}

func NewReportsHandler(svc service.ReportService, dispatcher *worker.Dispatcher) *ReportsHandler {
	return &ReportsHandler{svc: svc, dispatcher: dispatcher}
}

// List returns stored reports, or a single report when ?date= is given.
// A report enqueued on register close materializes asynchronously: poll this
// endpoint until the date appears.
func (h *ReportsHandler) List(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		resp, err := h.svc.GetByDate(c.Request.Context(), date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
			return
		}
		if resp == nil {
			c.JSON(http.StatusNotFound, apierror.New("No existe reporte para esa fecha"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	reports, total, err := h.svc.List(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reports, "total": total, "page": page, "limit": limit})
}

func (h *ReportsHandler) Get(c *gin.Context) {
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

// Generate regenerates the report for a date synchronously. Returns 404 when
// no closed session exists for the date.
func (h *ReportsHandler) Generate(c *gin.Context) {
	var req struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
	}
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Generate(c.Request.Context(), req.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("No hay caja cerrada para esa fecha"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Send enqueues email delivery of a report. The worker updates the report
// status to sent or failed.
func (h *ReportsHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.SendReportRequest
	if !bindAndValidate(c, &req) {
		return
	}

	// Reject before enqueueing when the report does not exist.
	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}

	payload := worker.EmailJobPayload{ReportID: id.String(), Email: req.Email}
	if err := h.dispatcher.EnqueueReportEmail(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"report_id": id.String(), "status": "queued"})
}
