package cli

import (
	"github.com/spf13/cobra"

	"github.com/parceldesk/parceldesk/internal/daemon"
	"github.com/parceldesk/parceldesk/internal/logger"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Bind address (overrides config)")
	serveCmd.Flags().IntP("port", "p", 0, "Listen port (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ParcelDesk web server",
	Long: `Start the web UI and JSON API. The server binds 127.0.0.1:5000 by
default; change [api] in config.toml or pass --host/--port.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	home, err := daemon.Home()
	if err != nil {
		return err
	}
	cfg, err := daemon.LoadConfig(home)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.API.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.API.Port, _ = cmd.Flags().GetInt("port")
	}

	log := logger.New()
	d, err := daemon.New(home, cfg, log)
	if err != nil {
		return err
	}
	return d.Run(cmd.Context())
}
