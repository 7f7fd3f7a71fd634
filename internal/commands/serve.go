package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spenso-dev/spenso/internal/server"
)

func newServeCommand() *cobra.Command {
	var dir string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the expense ledger HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(dir, addr)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger project directory")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(dir, addr string) error {
	cfg, svc, err := newService(dir)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Address = addr
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return server.New(cfg, svc, logger).Run()
}
