package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/insightdump/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "insight version %s\n", version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(w, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(w, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "INSIGHT",
				Section: "1",
				Source:  "insight " + version.Version,
				Manual:  "insight manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
