package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/insightdump/pkg/decode"
	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/export"
	"github.com/arthur-debert/insightdump/pkg/render"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		out    string
		title  string
		input  string
		force  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "export [files...]",
		Short: MsgExportShort,
		Long:  MsgExportLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(nil)
			if err != nil {
				return err
			}

			stdinFormat, err := decode.ParseFormat(input)
			if err != nil {
				return err
			}
			docs, err := readInputs(args, cmd.InOrStdin(), stdinFormat)
			if err != nil {
				return err
			}

			bare := dumper.New(render.New(cfg.EngineOptions()...), dumper.WithoutAssets())
			pages := make([]export.Document, 0, len(docs))
			for _, doc := range docs {
				pages = append(pages, export.Document{
					Title: doc.Name,
					Body:  bare.Dump(doc.Value, doc.meta()),
				})
			}

			result, err := export.Bundle(cmd.Context(), out, pages, export.Options{
				Title:  title,
				Force:  force,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				for _, f := range result.Files {
					pterm.Info.WithWriter(w).Printfln(MsgExportPlanned, f.Path, f.Size)
				}
				return nil
			}
			pterm.Success.WithWriter(w).Printfln(MsgExported, len(pages), result.Dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "insight-export", MsgFlagOut)
	cmd.Flags().StringVar(&title, "title", "", MsgFlagTitle)
	cmd.Flags().StringVarP(&input, "input", "i", "json", MsgFlagInput)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}
