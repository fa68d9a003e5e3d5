package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/insightdump/internal/cli"
	"github.com/arthur-debert/insightdump/pkg/errors"
)

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Command failed")

		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
