package daemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/parceldesk/parceldesk/internal/api"
	"github.com/parceldesk/parceldesk/internal/infra/sqlite"
	"github.com/parceldesk/parceldesk/internal/invoice"
)

// Version is the ParcelDesk release version.
const Version = "0.1.0"

// Daemon owns the long-running pieces: the database handle and the
// HTTP server.
type Daemon struct {
	cfg Config
	log zerolog.Logger
	db  *sqlite.DB
	srv *http.Server
}

// New opens storage under the data home and builds the HTTP server.
// The caller runs it with Run.
func New(home string, cfg Config, log zerolog.Logger) (*Daemon, error) {
	db, err := sqlite.Open(cfg.DataDir(home))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	renderer := &invoice.Renderer{Currency: cfg.Invoice.Currency}

	server := api.NewServer(db, renderer, log)
	server.SetVersion(Version)
	if cfg.Metrics.Enabled {
		server.EnableMetrics()
	}

	return &Daemon{
		cfg: cfg,
		log: log,
		db:  db,
		srv: &http.Server{
			Addr:              cfg.ListenAddr(),
			Handler:           server.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves HTTP until ctx is cancelled or a SIGINT/SIGTERM arrives,
// then drains in-flight requests and closes the database.
func (d *Daemon) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		d.log.Info().Str("addr", d.srv.Addr).Msg("ParcelDesk listening")
		if err := d.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		d.db.Close()
		return err
	case <-quit:
		d.log.Info().Msg("Shutting down server...")
	case <-ctx.Done():
		d.log.Info().Msg("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := d.srv.Shutdown(shutdownCtx)
	if cerr := d.db.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	d.log.Info().Msg("Server exited")
	return nil
}
