package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xiles84/orftrie/server"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve search and find over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("listen") {
				a.cfg.Listen = listen
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			svc, err := a.loadService()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, a.cfg.Listen, server.NewRouter(svc, a.log), a.log)
		},
	}
	c.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	return c
}
