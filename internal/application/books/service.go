// Package books exports the quarterly VAT record books to XLSX workbooks.
package books

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conta/backend/internal/domain/fiscal"
	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/infrastructure/logger"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	issuedSheet   = "Emitidas"
	receivedSheet = "Recibidas"
)

// Service exports the issued and received VAT books for a quarter
type Service struct {
	invoices  domain.InvoiceRepository
	expenses  domain.ExpenseRepository
	outputDir string
}

// NewService creates a new books Service writing workbooks under outputDir
func NewService(invoices domain.InvoiceRepository, expenses domain.ExpenseRepository, outputDir string) *Service {
	if outputDir == "" {
		outputDir = "."
	}
	return &Service{
		invoices:  invoices,
		expenses:  expenses,
		outputDir: outputDir,
	}
}

// ExportResult describes a written workbook
type ExportResult struct {
	Path     string `json:"path"`
	Issued   int    `json:"issued"`
	Received int    `json:"received"`
}

// Export writes the issued and received VAT books of a quarter into a single
// workbook with one sheet per book and returns where it was written. Empty
// quarters still produce a workbook with header rows only.
func (s *Service) Export(ctx context.Context, period fiscal.Period) (*ExportResult, error) {
	start, end := period.QuarterRange()

	invoices, err := s.invoices.FindInRange(ctx, start, end, nil)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), issuedSheet)
	if err := writeIssuedSheet(f, invoices); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(receivedSheet); err != nil {
		return nil, err
	}
	if err := writeReceivedSheet(f, expenses); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(s.outputDir, fmt.Sprintf("libro_iva_%s.xlsx", period))
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.FromContext(ctx).Info("VAT books exported",
		zap.String("period", period.String()),
		zap.String("path", path),
		zap.Int("issued", len(invoices)),
		zap.Int("received", len(expenses)),
	)
	return &ExportResult{Path: path, Issued: len(invoices), Received: len(expenses)}, nil
}

// ExportFromString is Export for a raw "YYYYQ#" period label
func (s *Service) ExportFromString(ctx context.Context, period string) (*ExportResult, error) {
	p, err := fiscal.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	return s.Export(ctx, p)
}

func writeIssuedSheet(f *excelize.File, invoices []domain.IssuedInvoice) error {
	header := []interface{}{
		"Numero", "Fecha", "Cliente", "NIF", "Pais",
		"Base", "Tipo IVA", "Cuota IVA", "Retencion %", "Retencion", "Actividad", "Nota",
	}
	if err := f.SetSheetRow(issuedSheet, "A1", &header); err != nil {
		return err
	}
	for i, inv := range invoices {
		row := []interface{}{
			inv.Number,
			inv.IssueDate.Format("2006-01-02"),
			inv.ClientName,
			inv.ClientTaxID,
			inv.Country,
			inv.Base.InexactFloat64(),
			inv.VATRate.InexactFloat64(),
			inv.VATAmount.InexactFloat64(),
			inv.WithholdingPct.InexactFloat64(),
			inv.Withholding.InexactFloat64(),
			inv.Activity.String(),
			inv.Note,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(issuedSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeReceivedSheet(f *excelize.File, expenses []domain.DeductibleExpense) error {
	header := []interface{}{
		"Proveedor", "NIF", "Fecha", "Base", "Tipo IVA", "Cuota IVA",
		"Afectacion %", "Categoria",
	}
	if err := f.SetSheetRow(receivedSheet, "A1", &header); err != nil {
		return err
	}
	for i, exp := range expenses {
		row := []interface{}{
			exp.Supplier,
			exp.SupplierTaxID,
			exp.Date.Format("2006-01-02"),
			exp.Base.InexactFloat64(),
			exp.VATRate.InexactFloat64(),
			exp.VATAmount.InexactFloat64(),
			exp.BusinessUsePct.InexactFloat64(),
			exp.Category,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(receivedSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
