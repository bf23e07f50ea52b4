package importing

import (
	"context"
	"testing"
	"time"

	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/conta/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `factura de serveis de software

FACTURA NÚM. 2025 004

Barcelona, 29 de novembre de 2025

ACME CONSULTING S.L.
NIF: B12345678

HONORARIS 3.680,00
IVA 21% 772,80
IRPF 15% (552,00)
TOTAL 3.900,80
`

func TestNormalizeDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3.680,00", "3680.00"},
		{"52,50", "52.50"},
		{"(52,50)", "-52.50"},
		{"1.234.567,89", "1234567.89"},
		{"120,00 €", "120.00"},
		{"-13,37", "-13.37"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeDecimal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NormalizeDecimal("n/a")
		assert.Error(t, err)
	})
}

func TestParseLongDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"29 de noviembre de 2025", time.Date(2025, time.November, 29, 0, 0, 0, 0, time.UTC)},
		{"29 de novembre de 2025", time.Date(2025, time.November, 29, 0, 0, 0, 0, time.UTC)},
		{"1 de enero 2024", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"3 d'abril de 2025", time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)},
		{"15 de març de 2025", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLongDate(tc.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want))
		})
	}

	t.Run("rejects an unparseable date", func(t *testing.T) {
		_, err := ParseLongDate("29/11/2025")
		assert.Error(t, err)
	})
}

func TestDraft(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	t.Run("extracts the common fields", func(t *testing.T) {
		draft, err := svc.Draft(ctx, sampleText, "facturas/2025-004.pdf")
		require.NoError(t, err)

		assert.Equal(t, "2025 004", draft.Number)
		assert.True(t, draft.IssueDate.Equal(time.Date(2025, time.November, 29, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "ACME CONSULTING S.L.", draft.ClientName)
		assert.Equal(t, "B12345678", draft.ClientTaxID)
		assert.Equal(t, "3680.00", draft.Base.StringFixed(2))
		assert.Equal(t, "3900.80", draft.Total.StringFixed(2))
		assert.Equal(t, "21", draft.VATRate.String())
		assert.Equal(t, "772.80", draft.VATAmount.StringFixed(2))
		assert.Equal(t, "15", draft.WithholdingPct.String())
		assert.Equal(t, "552.00", draft.Withholding.StringFixed(2))
		assert.Equal(t, domain.ActivitySoftware, draft.Activity)
		assert.Empty(t, draft.Note)
		assert.Equal(t, "facturas/2025-004.pdf", draft.SourcePath)
	})

	t.Run("zero-rates invoices quoting article 69", func(t *testing.T) {
		text := `serveis de software

FACTURA NÚM. 7

Barcelona, 3 d'abril de 2025

CLIENT GMBH
NIF: DE123456789

Operación no sujeta a IVA según el artículo 69 de la Ley 37/1992
HONORARIS 1.200,00
TOTAL 1.200,00
`
		draft, err := svc.Draft(ctx, text, "")
		require.NoError(t, err)
		assert.True(t, draft.VATRate.IsZero())
		assert.Equal(t, "Operación no sujeta a IVA (art. 69 LIVA)", draft.Note)
	})

	t.Run("defaults the activity to music", func(t *testing.T) {
		text := `concert al teatre

FACTURA NÚM. 12

Barcelona, 15 de març de 2025

SALA DE CONCERTS S.A.
NIF: A00000000

HONORARIS 400,00
TOTAL 400,00
`
		draft, err := svc.Draft(ctx, text, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ActivityMusic, draft.Activity)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := svc.Draft(ctx, "  \n ", "x.pdf")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}
