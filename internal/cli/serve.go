package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pypiscope/internal/server"
)

const defaultServeAddr = ":8080"

// serveCommand creates the "serve" command: expose the client over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the package API over HTTP",
		Long: `Serve the package API over HTTP.

Routes:
  GET /healthz
  GET /api/v1/users/{username}/packages
  GET /api/v1/users/{username}/details
  GET /api/v1/packages/{name}

The server is a stateless pass-through to the registry; nothing is cached
or stored between requests.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = fileCfg.Serve.Addr
			}
			if addr == "" {
				addr = defaultServeAddr
			}

			clientCfg, err := c.clientConfig("")
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(clientCfg, c.Logger).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Shut down cleanly when the command context is cancelled
			// (SIGINT/SIGTERM from main).
			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			c.Logger.Infof("Listening on %s", addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	return cmd
}
