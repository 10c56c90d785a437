package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/geoquiz-cli/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve quiz sessions over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sessions := httpapi.NewSessionStore(httpapi.StoreOptions{
				MaxSessions: app.cfg.GetInt(serveMaxSessionsKey),
				IdleTTL:     app.cfg.GetDuration(serveSessionTTLKey),
			})
			server := httpapi.New(addr, app.logger.With().Str("component", "httpapi").Logger(), httpapi.Deps{
				Countries: app.countries,
				Games:     app.games,
				Sessions:  sessions,
			})

			if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "serving quiz api on http://%s\n", addr); err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.cfg.GetString(serveAddrKey), "Listen address")

	return cmd
}
