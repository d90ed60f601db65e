// Package cli implements the parceldesk command tree.
package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/parceldesk/parceldesk/internal/daemon"
	"github.com/parceldesk/parceldesk/internal/domain"
	"github.com/parceldesk/parceldesk/internal/infra/sqlite"
)

var rootCmd = &cobra.Command{
	Use:   "parceldesk",
	Short: "Weekly parcel payment tracker",
	Long: `ParcelDesk tracks weekly parcel payments per customer and renders
invoice PDFs. Data lives in a local SQLite database under ~/.parceldesk
(override with PARCELDESK_HOME). Run 'parceldesk serve' for the web UI.`,
	Version:      daemon.Version,
	SilenceUsage: true,
}

// Execute runs the command tree. A .env file in the working directory
// is loaded first so PARCELDESK_HOME can be set per project.
func Execute() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// openStore opens the local database using the on-disk config.
func openStore() (*sqlite.DB, daemon.Config, error) {
	home, err := daemon.Home()
	if err != nil {
		return nil, daemon.Config{}, err
	}
	cfg, err := daemon.LoadConfig(home)
	if err != nil {
		return nil, cfg, err
	}
	db, err := sqlite.Open(cfg.DataDir(home))
	if err != nil {
		return nil, cfg, err
	}
	return db, cfg, nil
}

// resolveCustomer accepts a numeric customer id or an exact name.
func resolveCustomer(ctx context.Context, store domain.Store, arg string) (domain.Customer, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return store.Customer(ctx, id)
	}
	customers, err := store.Customers(ctx)
	if err != nil {
		return domain.Customer{}, err
	}
	for _, c := range customers {
		if c.Name == arg {
			return c, nil
		}
	}
	return domain.Customer{}, domain.ErrCustomerNotFound
}
