package handler

import (
	"net/http"
	"strconv"

	fiscalapp "github.com/conta/backend/internal/application/fiscal"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/conta/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// FiscalHandler handles the Modelo 303 and Modelo 130 settlement endpoints
type FiscalHandler struct {
	BaseHandler
	vat  *fiscalapp.VATService
	irpf *fiscalapp.IRPFService
}

// NewFiscalHandler creates a new FiscalHandler
func NewFiscalHandler(vat *fiscalapp.VATService, irpf *fiscalapp.IRPFService) *FiscalHandler {
	return &FiscalHandler{vat: vat, irpf: irpf}
}

// RegisterRoutes registers fiscal routes
func (h *FiscalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vat := rg.Group("/vat")
	{
		vat.GET("/year/:year", h.AnnualVAT)
		vat.GET("/:period", h.QuarterVAT)
	}

	irpf := rg.Group("/irpf")
	{
		irpf.GET("/:period", h.IRPFSnapshot)
	}

	rg.POST("/advance-payments", h.RegisterAdvancePayment)
}

// QuarterVAT settles the quarterly VAT declaration for a period
func (h *FiscalHandler) QuarterVAT(c *gin.Context) {
	settlement, err := h.vat.QuarterFromString(c.Request.Context(), c.Param("period"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settlement)
}

// AnnualVAT aggregates the four quarterly VAT settlements of a year
func (h *FiscalHandler) AnnualVAT(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.HandleError(c, shared.ErrInvalidPeriod)
		return
	}

	annual, err := h.vat.Year(c.Request.Context(), year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, annual)
}

// IRPFSnapshot computes the accumulated income-tax advance payment for a
// period. Pass software_only=true to restrict the snapshot to the software
// activity.
func (h *FiscalHandler) IRPFSnapshot(c *gin.Context) {
	restricted := c.Query("software_only") == "true"

	snapshot, err := h.irpf.SnapshotFromString(c.Request.Context(), c.Param("period"), restricted)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, snapshot)
}

// RegisterAdvancePayment records a paid Modelo 130 advance payment
func (h *FiscalHandler) RegisterAdvancePayment(c *gin.Context) {
	var req fiscalapp.RegisterAdvancePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	payment, err := h.irpf.RegisterAdvancePayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}
