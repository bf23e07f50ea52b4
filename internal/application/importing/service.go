// Package importing builds invoice drafts out of text extracted from
// invoice PDFs. Extraction is best effort: whatever field the text does not
// yield is left zero for the caller to fill in before recording.
package importing

import (
	"context"
	"regexp"
	"strings"
	"time"

	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/conta/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// exemptionNote annotates invoices not subject to Spanish VAT under the
// place-of-supply rule
const exemptionNote = "Operación no sujeta a IVA (art. 69 LIVA)"

var (
	numberRe      = regexp.MustCompile(`(?im)FACTURA\s+NÚM\.?\s*([0-9][0-9\s]*)`)
	baseRe        = regexp.MustCompile(`(?im)HONORARIS\s+([0-9.,]+)`)
	totalRe       = regexp.MustCompile(`(?im)TOTAL\s+([0-9.,]+)`)
	dateRe        = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:de|d['’])\s*[\p{L}·]+(?:\s+de)?\s+\d{4})`)
	clientNameRe  = regexp.MustCompile(`\n([A-Z][A-Z\s.]+)\n`)
	clientTaxIDRe = regexp.MustCompile(`(?im)NIF:\s*([A-Z0-9]+)`)
	vatPctRe      = regexp.MustCompile(`(?im)IVA\s+([0-9]+)\s*%`)
	vatAmountRe   = regexp.MustCompile(`(?im)IVA\s+[0-9]+\s*%\s*\(?(-?[0-9.,]+)\)?`)
	irpfPctRe     = regexp.MustCompile(`(?im)IRPF\s+([0-9]+)\s*%`)
	irpfAmountRe  = regexp.MustCompile(`(?im)IRPF\s+[0-9]+\s*%\s*\(?(-?[0-9.,]+)\)?`)
)

// InvoiceDraft holds the fields extracted from an invoice's text, shaped so
// it can be recorded as an issued invoice once reviewed
type InvoiceDraft struct {
	Number         string          `json:"number"`
	IssueDate      time.Time       `json:"issue_date"`
	ClientName     string          `json:"client_name"`
	ClientTaxID    string          `json:"client_tax_id"`
	Base           decimal.Decimal `json:"base"`
	Total          decimal.Decimal `json:"total"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	WithholdingPct decimal.Decimal `json:"withholding_pct"`
	Withholding    decimal.Decimal `json:"withholding"`
	Activity       domain.Activity `json:"activity"`
	Note           string          `json:"note"`
	SourcePath     string          `json:"source_path"`
}

// Service extracts invoice drafts from plain invoice text
type Service struct{}

// NewService creates a new importing Service
func NewService() *Service {
	return &Service{}
}

// Draft extracts an invoice draft from the plain text of an invoice.
// sourcePath records where the text came from and is carried into the draft
// untouched. Empty text is rejected; any individual field the text does not
// yield is left at its zero value.
func (s *Service) Draft(ctx context.Context, text, sourcePath string) (*InvoiceDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, shared.ErrInvalidInput
	}

	draft := &InvoiceDraft{
		Number:      findString(numberRe, text),
		ClientName:  findString(clientNameRe, text),
		ClientTaxID: findString(clientTaxIDRe, text),
		Base:        findDecimal(baseRe, text),
		Total:       findDecimal(totalRe, text),
		Activity:    guessActivity(text),
		SourcePath:  sourcePath,
	}

	if raw := findString(dateRe, text); raw != "" {
		if d, err := ParseLongDate(raw); err == nil {
			draft.IssueDate = d
		}
	}

	draft.VATRate, draft.Note = classifyVAT(text)
	draft.VATAmount = findDecimal(vatAmountRe, text)
	draft.WithholdingPct = findDecimal(irpfPctRe, text)
	draft.Withholding = findDecimal(irpfAmountRe, text)

	logger.FromContext(ctx).Info("invoice draft extracted",
		zap.String("number", draft.Number),
		zap.String("source", sourcePath),
	)
	return draft, nil
}

// classifyVAT decides the draft's VAT rate. An invoice quoting article 69 of
// the Spanish VAT law is not subject to VAT regardless of any rate line, and
// gets a legal note explaining the zero rate.
func classifyVAT(text string) (decimal.Decimal, string) {
	if strings.Contains(strings.ToLower(text), "artículo 69") {
		return decimal.Zero, exemptionNote
	}
	return findDecimal(vatPctRe, text), ""
}

// guessActivity infers the professional activity the invoice belongs to
func guessActivity(text string) domain.Activity {
	if strings.Contains(strings.ToLower(text), "software") {
		return domain.ActivitySoftware
	}
	return domain.ActivityMusic
}

func findString(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func findDecimal(re *regexp.Regexp, text string) decimal.Decimal {
	raw := findString(re, text)
	if raw == "" {
		return decimal.Zero
	}
	d, err := NormalizeDecimal(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
