package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/insightdump/pkg/decode"
	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/logging"
	"github.com/arthur-debert/insightdump/pkg/watch"
)

func newDumpCmd(a *app) *cobra.Command {
	var (
		format   string
		maxDepth int
		escape   bool
		input    string
		watching bool
	)

	cmd := &cobra.Command{
		Use:     "dump [files...]",
		Short:   MsgDumpShort,
		Long:    MsgDumpLong,
		Example: MsgDumpExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = format
			}
			if cmd.Flags().Changed("max-depth") {
				overrides["render.max_depth"] = maxDepth
			}
			if cmd.Flags().Changed("escape") {
				overrides["render.escape_text"] = escape
			}

			cfg, err := a.loadConfig(overrides)
			if err != nil {
				return err
			}

			stdinFormat, err := decode.ParseFormat(input)
			if err != nil {
				return err
			}

			if watching && hasStdin(args) {
				return errors.New(errors.ErrInvalidInput, MsgErrStdinWatch)
			}

			out := cmd.OutOrStdout()
			dump := func() error {
				docs, err := readInputs(args, cmd.InOrStdin(), stdinFormat)
				if err != nil {
					return err
				}
				return writeDocs(out, cfg, docs)
			}

			if err := dump(); err != nil {
				return err
			}
			if !watching {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchAndDump(ctx, cmd, args, dump)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().IntVarP(&maxDepth, "max-depth", "d", 10, MsgFlagMaxDepth)
	cmd.Flags().BoolVar(&escape, "escape", false, MsgFlagEscape)
	cmd.Flags().StringVarP(&input, "input", "i", "json", MsgFlagInput)
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, MsgFlagWatch)

	return cmd
}

// watchAndDump runs dump again after every change until ctx is done.
// Decoding errors are reported and the watch goes on.
func watchAndDump(ctx context.Context, cmd *cobra.Command, files []string, dump func() error) error {
	pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln(MsgWatching, len(files))

	return watch.Watch(ctx, files, func(path string) {
		logger := logging.WithFields(map[string]interface{}{"path": path})
		logger.Debug().Msg("Rendering again")
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		if err := dump(); err != nil {
			pterm.Error.WithWriter(cmd.ErrOrStderr()).Println(err.Error())
		}
	})
}
