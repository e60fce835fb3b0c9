package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/karbobc/workday/internal/ui/output"
	"github.com/karbobc/workday/internal/ui/style"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [date]",
		Short: "Report whether a date (YYYY-MM-DD, default today) is a workday",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				date = args[0]
			}

			result, err := c.app.Check(cmd.Context(), date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := lipgloss.NewRenderer(out, termenv.WithProfile(output.ColorProfile()))
			icon, label, color := style.Cross, "day off", style.Slate
			if result.IsWorkday {
				icon, label, color = style.Check, "workday", style.Green
			}
			mark := renderer.NewStyle().Foreground(color).Render(icon)
			_, _ = fmt.Fprintf(out, "%s %s %s\n", mark, result.Date, label)
			return nil
		},
	}
}
