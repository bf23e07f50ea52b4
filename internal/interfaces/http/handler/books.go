package handler

import (
	"net/http"

	booksapp "github.com/conta/backend/internal/application/books"
	importapp "github.com/conta/backend/internal/application/importing"
	"github.com/conta/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BooksHandler handles the VAT book export and invoice import endpoints
type BooksHandler struct {
	BaseHandler
	books    *booksapp.Service
	importer *importapp.Service
}

// NewBooksHandler creates a new BooksHandler
func NewBooksHandler(books *booksapp.Service, importer *importapp.Service) *BooksHandler {
	return &BooksHandler{books: books, importer: importer}
}

// RegisterRoutes registers books and import routes
func (h *BooksHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/books/:period/export", h.ExportBooks)
	rg.POST("/imports/invoice-draft", h.DraftInvoice)
}

// ExportBooks writes the issued and received VAT books of a quarter to an
// XLSX workbook
func (h *BooksHandler) ExportBooks(c *gin.Context) {
	result, err := h.books.ExportFromString(c.Request.Context(), c.Param("period"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// DraftInvoiceRequest carries the extracted text of an invoice document
type DraftInvoiceRequest struct {
	Text       string `json:"text" binding:"required"`
	SourcePath string `json:"source_path"`
}

// DraftInvoice extracts an invoice draft from invoice text
func (h *BooksHandler) DraftInvoice(c *gin.Context) {
	var req DraftInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	draft, err := h.importer.Draft(c.Request.Context(), req.Text, req.SourcePath)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, draft)
}
