package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"edna-quiz/page"
	"edna-quiz/webapp"
)

func newServeCmd(o *rootOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quiz page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := o.cfg.Server
			if cmd.Flags().Changed("host") {
				sc.Host = host
			}
			if cmd.Flags().Changed("port") {
				sc.Port = port
			}

			hostPage, err := page.LoadHost(sc.HostPage)
			if err != nil {
				return err
			}

			// A failed load is shown on the page rather than aborting.
			c, loadErr := o.load(cmd)
			if loadErr != nil {
				o.logger.Error("dataset load failed", "source", o.cfg.Data.Source, "error", loadErr)
			}

			srv := webapp.New(c, loadErr, hostPage, webapp.Options{
				Addr:            sc.Addr(),
				ReadTimeout:     sc.ReadTimeout,
				WriteTimeout:    sc.WriteTimeout,
				ShutdownTimeout: sc.ShutdownTimeout,
				RateLimit:       sc.RateLimit,
				Burst:           sc.Burst,
				Lang:            o.serverLocale(),
				Level:           o.displayLevel(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "localhost", "Host to listen on")
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	return cmd
}
