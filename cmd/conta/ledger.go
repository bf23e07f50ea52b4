package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	ledgerapp "github.com/conta/backend/internal/application/ledger"
	domain "github.com/conta/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

func amountFlag(flags *pflag.FlagSet, name string) (decimal.Decimal, error) {
	value, _ := flags.GetString(name)
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}

func parseDate(flag, value string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", flag, value)
	}
	return d, nil
}

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Record and list issued invoices",
}

var invoiceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an issued invoice",
	Example: `  conta invoice add --number 2025-001 --date 2025-02-10 --client "ACME S.L." \
      --base 1000.00 --vat 21 --irpf 15 --activity SOFTWARE`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		flags := cmd.Flags()
		number, _ := flags.GetString("number")
		client, _ := flags.GetString("client")
		taxID, _ := flags.GetString("nif")
		country, _ := flags.GetString("country")
		activity, _ := flags.GetString("activity")
		note, _ := flags.GetString("note")
		dateStr, _ := flags.GetString("date")

		date, err := parseDate("date", dateStr)
		if err != nil {
			return err
		}
		base, err := amountFlag(flags, "base")
		if err != nil {
			return err
		}
		vat, err := amountFlag(flags, "vat")
		if err != nil {
			return err
		}
		irpf, err := amountFlag(flags, "irpf")
		if err != nil {
			return err
		}

		invoice, err := a.ledger.CreateInvoice(a.ctx(), ledgerapp.CreateInvoiceRequest{
			Number:         number,
			IssueDate:      date,
			ClientName:     client,
			ClientTaxID:    taxID,
			Country:        country,
			Base:           base,
			VATRate:        vat,
			WithholdingPct: irpf,
			Activity:       activity,
			Note:           note,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded invoice %s (%s): base %s, VAT %s, IRPF %s\n",
			invoice.Number, invoice.Quarter(),
			invoice.Base.StringFixed(2), invoice.VATAmount.StringFixed(2), invoice.Withholding.StringFixed(2))
		return nil
	},
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		invoices, err := a.ledger.ListInvoices(a.ctx(), domain.ListOptions{Limit: limit})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NUMBER\tDATE\tCLIENT\tBASE\tVAT\tIRPF\tACTIVITY")
		for _, inv := range invoices {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				inv.Number,
				inv.IssueDate.Format(dateLayout),
				inv.ClientName,
				inv.Base.StringFixed(2),
				inv.VATAmount.StringFixed(2),
				inv.Withholding.StringFixed(2),
				inv.Activity,
			)
		}
		return w.Flush()
	},
}

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and list deductible expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a deductible expense",
	Example: `  conta expense add --supplier "Hosting SL" --date 2025-03-03 --base 30.00 --vat 21
  conta expense add --supplier "Movil SA" --date 2025-03-05 --base 40.00 --vat 21 --business-use 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		flags := cmd.Flags()
		supplier, _ := flags.GetString("supplier")
		taxID, _ := flags.GetString("nif")
		category, _ := flags.GetString("category")
		dateStr, _ := flags.GetString("date")

		date, err := parseDate("date", dateStr)
		if err != nil {
			return err
		}
		base, err := amountFlag(flags, "base")
		if err != nil {
			return err
		}
		vat, err := amountFlag(flags, "vat")
		if err != nil {
			return err
		}
		businessUse, err := amountFlag(flags, "business-use")
		if err != nil {
			return err
		}

		expense, err := a.ledger.CreateExpense(a.ctx(), ledgerapp.CreateExpenseRequest{
			Supplier:       supplier,
			SupplierTaxID:  taxID,
			Date:           date,
			Base:           base,
			VATRate:        vat,
			BusinessUsePct: businessUse,
			Category:       category,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded expense from %s (%s): base %s, VAT %s, business use %s%%\n",
			expense.Supplier, expense.Quarter(),
			expense.Base.StringFixed(2), expense.VATAmount.StringFixed(2), expense.BusinessUsePct.String())
		return nil
	},
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		expenses, err := a.ledger.ListExpenses(a.ctx(), domain.ListOptions{Limit: limit})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSUPPLIER\tBASE\tVAT\tUSE%\tCATEGORY")
		for _, exp := range expenses {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				exp.Date.Format(dateLayout),
				exp.Supplier,
				exp.Base.StringFixed(2),
				exp.VATAmount.StringFixed(2),
				exp.BusinessUsePct.String(),
				exp.Category,
			)
		}
		return w.Flush()
	},
}

var contributionCmd = &cobra.Command{
	Use:   "contribution",
	Short: "Record social contribution payments",
}

var contributionAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Record a contribution payment",
	Example: `  conta contribution add --date 2025-01-31 --amount 300.00 --concept "cuota autonomos enero"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		flags := cmd.Flags()
		concept, _ := flags.GetString("concept")
		dateStr, _ := flags.GetString("date")

		date, err := parseDate("date", dateStr)
		if err != nil {
			return err
		}
		amount, err := amountFlag(flags, "amount")
		if err != nil {
			return err
		}

		payment, err := a.ledger.CreateContribution(a.ctx(), ledgerapp.CreateContributionRequest{
			Date:    date,
			Amount:  amount,
			Concept: concept,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded contribution of %s on %s\n",
			payment.Amount.StringFixed(2), payment.Date.Format(dateLayout))
		return nil
	},
}

func init() {
	invoiceAddCmd.Flags().String("number", "", "invoice number, unique in the ledger")
	invoiceAddCmd.Flags().String("date", "", "issue date (YYYY-MM-DD)")
	invoiceAddCmd.Flags().String("client", "", "client name")
	invoiceAddCmd.Flags().String("nif", "", "client tax ID")
	invoiceAddCmd.Flags().String("country", "", "client country")
	invoiceAddCmd.Flags().String("base", "", "taxable base in EUR")
	invoiceAddCmd.Flags().String("vat", "0", "VAT rate percent")
	invoiceAddCmd.Flags().String("irpf", "0", "IRPF withholding percent")
	invoiceAddCmd.Flags().String("activity", "", "activity (SOFTWARE or MUSIC)")
	invoiceAddCmd.Flags().String("note", "", "free-form note")
	_ = invoiceAddCmd.MarkFlagRequired("number")
	_ = invoiceAddCmd.MarkFlagRequired("date")
	_ = invoiceAddCmd.MarkFlagRequired("client")
	_ = invoiceAddCmd.MarkFlagRequired("base")
	_ = invoiceAddCmd.MarkFlagRequired("activity")
	invoiceListCmd.Flags().Int("limit", 0, "maximum rows, 0 for all")
	invoiceCmd.AddCommand(invoiceAddCmd, invoiceListCmd)

	expenseAddCmd.Flags().String("supplier", "", "supplier name")
	expenseAddCmd.Flags().String("nif", "", "supplier tax ID")
	expenseAddCmd.Flags().String("date", "", "expense date (YYYY-MM-DD)")
	expenseAddCmd.Flags().String("base", "", "taxable base in EUR")
	expenseAddCmd.Flags().String("vat", "0", "VAT rate percent")
	expenseAddCmd.Flags().String("business-use", "", "business-use percent, defaults to 100")
	expenseAddCmd.Flags().String("category", "", "expense category")
	_ = expenseAddCmd.MarkFlagRequired("supplier")
	_ = expenseAddCmd.MarkFlagRequired("date")
	_ = expenseAddCmd.MarkFlagRequired("base")
	expenseListCmd.Flags().Int("limit", 0, "maximum rows, 0 for all")
	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd)

	contributionAddCmd.Flags().String("date", "", "payment date (YYYY-MM-DD)")
	contributionAddCmd.Flags().String("amount", "", "amount in EUR")
	contributionAddCmd.Flags().String("concept", "", "payment concept")
	_ = contributionAddCmd.MarkFlagRequired("date")
	_ = contributionAddCmd.MarkFlagRequired("amount")
	contributionCmd.AddCommand(contributionAddCmd)

	rootCmd.AddCommand(invoiceCmd, expenseCmd, contributionCmd)
}
