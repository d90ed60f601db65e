package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parceldesk/parceldesk/internal/domain"
)

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerRemoveCmd)
}

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage the customer registry",
}

// ─── customer add ───────────────────────────────────────────────────────────

var customerAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Register a customer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerAdd,
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := db.AddCustomer(cmd.Context(), args[0])
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return fmt.Errorf("customer name cannot be empty")
	case errors.Is(err, domain.ErrCustomerExists):
		return fmt.Errorf("customer %q already exists", strings.TrimSpace(args[0]))
	case err != nil:
		return err
	}

	fmt.Fprintf(os.Stdout, "✅ Customer %q registered (id %d).\n", c.Name, c.ID)
	return nil
}

// ─── customer list ──────────────────────────────────────────────────────────

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered customers",
	RunE:  runCustomerList,
}

func runCustomerList(cmd *cobra.Command, args []string) error {
	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	customers, err := db.Customers(cmd.Context())
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		fmt.Fprintln(os.Stdout, "No customers registered.")
		fmt.Fprintln(os.Stdout, "Use 'parceldesk customer add NAME' to register one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Customers (%d):\n", len(customers))
	for _, c := range customers {
		fmt.Fprintf(os.Stdout, "  %4d  %s\n", c.ID, c.Name)
	}
	return nil
}

// ─── customer remove ────────────────────────────────────────────────────────

var customerRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a customer and their payment records",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerRemove,
}

func runCustomerRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("customer id must be an integer, got %q", args[0])
	}

	db, _, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RemoveCustomer(cmd.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return fmt.Errorf("customer %d not found", id)
		}
		return err
	}

	fmt.Fprintf(os.Stdout, "✅ Customer %d removed.\n", id)
	return nil
}
