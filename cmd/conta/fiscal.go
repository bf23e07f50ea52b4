package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	fiscalapp "github.com/conta/backend/internal/application/fiscal"
	"github.com/conta/backend/internal/domain/fiscal"
	"github.com/spf13/cobra"
)

var vatCmd = &cobra.Command{
	Use:     "vat [period]",
	Short:   "Settle the quarterly Modelo 303 VAT declaration",
	Example: `  conta vat 2025Q3`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		settlement, err := a.vat.QuarterFromString(a.ctx(), args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Modelo 303 for %s\n", settlement.Period)
		fmt.Fprintf(w, "Output base\t%s\n", settlement.OutputBase.StringFixed(2))
		fmt.Fprintf(w, "Output quota\t%s\n", settlement.OutputQuota.StringFixed(2))
		fmt.Fprintf(w, "Deductible base\t%s\n", settlement.DeductibleBase.StringFixed(2))
		fmt.Fprintf(w, "Deductible quota\t%s\n", settlement.DeductibleQuota.StringFixed(2))
		fmt.Fprintf(w, "Result\t%s\n", settlement.Result.StringFixed(2))
		return w.Flush()
	},
}

var vatYearCmd = &cobra.Command{
	Use:     "vat-year [year]",
	Short:   "Aggregate the four quarterly VAT settlements of a year",
	Example: `  conta vat-year 2025`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		annual, err := a.vat.Year(a.ctx(), year)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PERIOD\tOUT BASE\tOUT QUOTA\tDED BASE\tDED QUOTA\tRESULT")
		for _, q := range annual.Quarters {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				q.Period,
				q.OutputBase.StringFixed(2),
				q.OutputQuota.StringFixed(2),
				q.DeductibleBase.StringFixed(2),
				q.DeductibleQuota.StringFixed(2),
				q.Result.StringFixed(2),
			)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			annual.Year,
			annual.OutputBase.StringFixed(2),
			annual.OutputQuota.StringFixed(2),
			annual.DeductibleBase.StringFixed(2),
			annual.DeductibleQuota.StringFixed(2),
			annual.Result.StringFixed(2),
		)
		return w.Flush()
	},
}

var m130Cmd = &cobra.Command{
	Use:   "m130 [period]",
	Short: "Compute the accumulated Modelo 130 IRPF advance payment",
	Example: `  conta m130 2025Q3
  conta m130 2025Q3 --software-only`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		restricted, _ := cmd.Flags().GetBool("software-only")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		snapshot, err := a.irpf.SnapshotFromString(a.ctx(), args[0], restricted)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		title := "Modelo 130"
		if snapshot.Restricted {
			title += " (software only)"
		}
		fmt.Fprintf(w, "%s accumulated to %s\n", title, snapshot.Period)
		fmt.Fprintf(w, "Income\t%s\n", snapshot.Income.StringFixed(2))
		fmt.Fprintf(w, "Expenses\t%s\n", snapshot.Expenses.StringFixed(2))
		fmt.Fprintf(w, "  of which contributions\t%s\n", snapshot.Contributions.StringFixed(2))
		fmt.Fprintf(w, "Net income\t%s\n", snapshot.NetIncome.StringFixed(2))
		fmt.Fprintf(w, "Provisional base (20%%)\t%s\n", snapshot.ProvisionalBase.StringFixed(2))
		fmt.Fprintf(w, "Withholdings\t%s\n", snapshot.Withholdings.StringFixed(2))
		fmt.Fprintf(w, "Prior payments\t%s\n", snapshot.PriorPayments.StringFixed(2))
		fmt.Fprintf(w, "Result\t%s\n", snapshot.Result.StringFixed(2))
		return w.Flush()
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Register paid Modelo 130 advance payments",
}

var advanceAddCmd = &cobra.Command{
	Use:     "add [period]",
	Short:   "Register the advance payment made for a period",
	Example: `  conta advance add 2025Q1 --amount 180.00 --paid-at 2025-04-15`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		amount, err := amountFlag(cmd.Flags(), "amount")
		if err != nil {
			return err
		}
		paidAtStr, _ := cmd.Flags().GetString("paid-at")
		paidAt, err := parseDate("paid-at", paidAtStr)
		if err != nil {
			return err
		}

		payment, err := a.irpf.RegisterAdvancePayment(a.ctx(), fiscalapp.RegisterAdvancePaymentRequest{
			Period: args[0],
			Amount: amount,
			PaidAt: paidAt,
		})
		if err != nil {
			return err
		}

		period := fiscal.Period{Year: payment.Year, Quarter: payment.Quarter}
		fmt.Fprintf(cmd.OutOrStdout(), "Registered advance payment of %s for %s\n",
			payment.Amount.StringFixed(2), period)
		return nil
	},
}

func init() {
	m130Cmd.Flags().Bool("software-only", false, "restrict to the software activity and drop withholdings")

	advanceAddCmd.Flags().String("amount", "", "amount paid in EUR")
	advanceAddCmd.Flags().String("paid-at", "", "payment date (YYYY-MM-DD)")
	_ = advanceAddCmd.MarkFlagRequired("amount")
	_ = advanceAddCmd.MarkFlagRequired("paid-at")
	advanceCmd.AddCommand(advanceAddCmd)

	rootCmd.AddCommand(vatCmd, vatYearCmd, m130Cmd, advanceCmd)
}
