package cli

import (
	"context"
	"html"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/insightdump/pkg/config"
	"github.com/arthur-debert/insightdump/pkg/decode"
	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/render"
	"github.com/arthur-debert/insightdump/pkg/response"
)

// assetsPath is where the stylesheet and the script are served
const assetsPath = "/assets/"

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve files...",
		Short: MsgServeShort,
		Long:  MsgServeLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hasStdin(args) {
				return errors.New(errors.ErrInvalidInput, MsgErrStdinServe)
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("addr") {
				overrides["server.addr"] = addr
			}
			cfg, err := a.loadConfig(overrides)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return errors.Wrapf(err, errors.ErrServe, "failed to listen on %s", cfg.Server.Addr).
					WithDetail("addr", cfg.Server.Addr)
			}

			pterm.Info.WithWriter(cmd.OutOrStdout()).Printfln(MsgServing, len(args), ln.Addr().String())
			return serve(ctx, ln, newServeHandler(cfg, args), cfg.Server.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", MsgFlagAddr)
	return cmd
}

// newServeHandler answers / with the dumps of files, decoded per request
func newServeHandler(cfg *config.Config, files []string) http.Handler {
	engine := render.New(cfg.EngineOptions()...)
	linked := []dumper.Option{dumper.WithAssetBase(assetsPath)}

	mux := http.NewServeMux()
	mux.Handle(assetsPath, http.StripPrefix(assetsPath, http.FileServerFS(dumper.Assets())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		tw := response.NewTrackingWriter(w)
		resp := response.New("")
		docs, err := readInputs(files, nil, decode.FormatUnknown)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode served files")
			resp = response.New(html.EscapeString(err.Error()), response.WithStatus(http.StatusInternalServerError))
		} else {
			resp.Content = renderHTML(engine, linked, docs)
		}

		if err := resp.Send(tw); err != nil {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to send dump")
		}
	})
	return mux
}

// serve runs the server on ln until ctx is done, then shuts it down
func serve(ctx context.Context, ln net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, errors.ErrServe, "server stopped")
	case <-ctx.Done():
	}

	log.Info().Msg(MsgShuttingDown)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, errors.ErrServe, "failed to shut down")
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, errors.ErrServe, "server stopped")
	}
	return nil
}
