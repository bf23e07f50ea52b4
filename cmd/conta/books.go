package main

import (
	"fmt"
	"os"

	booksapp "github.com/conta/backend/internal/application/books"
	"github.com/spf13/cobra"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Export the quarterly VAT record books",
}

var booksExportCmd = &cobra.Command{
	Use:     "export [period]",
	Short:   "Export the issued and received VAT books of a quarter to XLSX",
	Example: `  conta books export 2025Q3 --out ./libros`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		svc := a.books
		if outDir, _ := cmd.Flags().GetString("out"); outDir != "" {
			svc = booksapp.NewService(a.invoices, a.expenses, outDir)
		}

		result, err := svc.ExportFromString(a.ctx(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d issued, %d received)\n",
			result.Path, result.Issued, result.Received)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [text-file]",
	Short: "Extract an invoice draft from an invoice's extracted text",
	Long: `Reads the plain text extracted from an invoice PDF and prints the
fields it could recognize. The draft is not recorded; review it and record
the invoice with "conta invoice add".`,
	Example: `  pdftotext factura.pdf - | conta import /dev/stdin
  conta import factura.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		draft, err := a.importer.Draft(a.ctx(), string(text), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Number:       %s\n", draft.Number)
		if !draft.IssueDate.IsZero() {
			fmt.Fprintf(out, "Issue date:   %s\n", draft.IssueDate.Format(dateLayout))
		}
		fmt.Fprintf(out, "Client:       %s\n", draft.ClientName)
		fmt.Fprintf(out, "Client NIF:   %s\n", draft.ClientTaxID)
		fmt.Fprintf(out, "Base:         %s\n", draft.Base.StringFixed(2))
		fmt.Fprintf(out, "VAT rate:     %s%%\n", draft.VATRate.String())
		fmt.Fprintf(out, "IRPF rate:    %s%%\n", draft.WithholdingPct.String())
		fmt.Fprintf(out, "Total:        %s\n", draft.Total.StringFixed(2))
		fmt.Fprintf(out, "Activity:     %s\n", draft.Activity)
		if draft.Note != "" {
			fmt.Fprintf(out, "Note:         %s\n", draft.Note)
		}
		return nil
	},
}

func init() {
	booksExportCmd.Flags().String("out", "", "output directory (overrides configuration)")
	booksCmd.AddCommand(booksExportCmd)

	rootCmd.AddCommand(booksCmd, importCmd)
}
