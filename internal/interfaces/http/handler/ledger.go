package handler

import (
	"net/http"

	ledgerapp "github.com/conta/backend/internal/application/ledger"
	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles the invoice, expense and contribution book endpoints
type LedgerHandler struct {
	BaseHandler
	service *ledgerapp.Service
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(service *ledgerapp.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// RegisterRoutes registers ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:number", h.GetInvoice)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.CreateExpense)
		expenses.GET("", h.ListExpenses)
	}

	rg.POST("/contributions", h.CreateContribution)
}

// CreateInvoice records a new issued invoice
func (h *LedgerHandler) CreateInvoice(c *gin.Context) {
	var req ledgerapp.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// ListInvoices returns recorded invoices, oldest first unless order=desc
func (h *LedgerHandler) ListInvoices(c *gin.Context) {
	opts, ok := h.bindListOptions(c)
	if !ok {
		return
	}

	invoices, err := h.service.ListInvoices(c.Request.Context(), opts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, invoices, len(invoices))
}

// GetInvoice returns a single invoice by its number
func (h *LedgerHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.GetInvoice(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// CreateExpense records a new deductible expense
func (h *LedgerHandler) CreateExpense(c *gin.Context) {
	var req ledgerapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	expense, err := h.service.CreateExpense(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

// ListExpenses returns recorded expenses, oldest first unless order=desc
func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	opts, ok := h.bindListOptions(c)
	if !ok {
		return
	}

	expenses, err := h.service.ListExpenses(c.Request.Context(), opts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, expenses, len(expenses))
}

// CreateContribution records a new contribution payment
func (h *LedgerHandler) CreateContribution(c *gin.Context) {
	var req ledgerapp.CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	payment, err := h.service.CreateContribution(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

func (h *LedgerHandler) bindListOptions(c *gin.Context) (domain.ListOptions, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return domain.ListOptions{}, false
	}
	return domain.ListOptions{
		Limit:      req.Limit,
		Descending: req.Order == "desc",
	}, true
}
