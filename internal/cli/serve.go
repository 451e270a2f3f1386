package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			if cmd.Flags().Changed("host") {
				app.Opts.Host = host
			}
			if cmd.Flags().Changed("port") {
				app.Opts.Port = port
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if !app.Opts.Offline {
				probeCtx, done := context.WithTimeout(ctx, app.Opts.Timeout())
				online := app.Net.Probe(probeCtx, app.Client)
				done()
				log.Info("Provider connectivity", zap.Bool("online", online))
			}

			var pinger server.Pinger
			if app.Store != nil {
				pinger = app.Store
			}
			s, err := server.StartServer(ctx, pinger, app.Services())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), greetingBanner)
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", s.Addr)

			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			log.Info("Shutting down HTTP server")
			return s.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen address (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")
	return cmd
}
