package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nekruzvatanshoev/brewfind/pkg/brewfind/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   ServeCmdName,
		Short: ServeCmdShort,
		Long:  ServeCmdLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), a)
		},
	}

	flags := cmd.Flags()
	flags.String("address", ":8080", "address the HTTP server listens on")
	flags.Bool("surface-detail-errors", false, "show an error on brewery pages that cannot be loaded")
	_ = a.v.BindPFlag("server.address", flags.Lookup("address"))
	_ = a.v.BindPFlag("detail.surface_errors", flags.Lookup("surface-detail-errors"))
	return cmd
}

func serve(ctx context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := a.log.With().Str("component", "serve").Logger()

	srv, err := server.NewHTTPServer(server.Options{
		Addr:                a.cfg.Server.Address,
		ReadTimeout:         a.cfg.Server.ReadTimeout,
		WriteTimeout:        a.cfg.Server.WriteTimeout,
		Directory:           a.client(),
		Logger:              a.log,
		SurfaceDetailErrors: a.cfg.Detail.SurfaceErrors,
	})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Str("api", a.cfg.API.BaseURL).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down the server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
