package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/parceldesk/parceldesk/internal/domain"
	"github.com/parceldesk/parceldesk/internal/invoice"
)

func init() {
	rootCmd.AddCommand(invoiceCmd)

	invoiceCmd.Flags().StringP("week", "w", "current", "Week to invoice (YYYY-MM-DD or 'current')")
	invoiceCmd.Flags().StringP("output", "o", "", "Output file (default Invoice_NAME_WEEK.pdf)")
}

var invoiceCmd = &cobra.Command{
	Use:   "invoice CUSTOMER",
	Short: "Render a weekly invoice PDF",
	Long: `Render the invoice PDF for one customer week. CUSTOMER is a numeric
id or an exact name. Weeks are identified by their Monday date.`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoice,
}

func runInvoice(cmd *cobra.Command, args []string) error {
	weekArg, _ := cmd.Flags().GetString("week")
	output, _ := cmd.Flags().GetString("output")

	db, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	customer, err := resolveCustomer(ctx, db, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return fmt.Errorf("customer %q not found", args[0])
		}
		return err
	}

	var weekStart time.Time
	if weekArg == "current" {
		weekStart = domain.MondayOf(time.Now())
	} else {
		weekStart, err = domain.ParseWeek(weekArg)
		if err != nil {
			return fmt.Errorf("week must be YYYY-MM-DD or 'current', got %q", weekArg)
		}
	}

	rows, err := db.Week(ctx, customer.ID, weekStart)
	if err != nil {
		return err
	}

	r := &invoice.Renderer{Currency: cfg.Invoice.Currency}
	pdf, err := r.Render(customer.Name, weekStart, rows)
	if err != nil {
		return err
	}

	if output == "" {
		output = invoice.Filename(customer.Name, weekStart)
	}
	if err := os.WriteFile(output, pdf, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✅ Invoice written to %s\n", output)
	return nil
}
