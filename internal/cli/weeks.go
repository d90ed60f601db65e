package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parceldesk/parceldesk/internal/domain"
	"github.com/parceldesk/parceldesk/internal/invoice"
)

func init() {
	rootCmd.AddCommand(weeksCmd)
}

var weeksCmd = &cobra.Command{
	Use:   "weeks CUSTOMER",
	Short: "List a customer's saved weeks",
	Long:  `List the weeks with saved payment records, most recent first. CUSTOMER is a numeric id or an exact name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runWeeks,
}

func runWeeks(cmd *cobra.Command, args []string) error {
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

	weeks, err := db.Weeks(ctx, customer.ID)
	if err != nil {
		return err
	}
	if len(weeks) == 0 {
		fmt.Fprintf(os.Stdout, "No saved weeks for %s.\n", customer.Name)
		return nil
	}

	r := &invoice.Renderer{Currency: cfg.Invoice.Currency}
	fmt.Fprintf(os.Stdout, "Saved weeks for %s (%d):\n", customer.Name, len(weeks))
	for _, w := range weeks {
		rows, err := db.Week(ctx, customer.ID, w)
		if err != nil {
			return err
		}
		pending := domain.PendingTotal(rows)
		fmt.Fprintf(os.Stdout, "  %s  pending %s\n", domain.FormatWeek(w), r.Amount(pending))
	}
	return nil
}
