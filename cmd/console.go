package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/errs"
	"rnctrack/internal/usecase/inspection"
	"rnctrack/internal/usecase/rncconsole"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive terminal console browsing reports and evidence",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		refresh, _ := cmd.Flags().GetDuration("refresh")
		area, _ := cmd.Flags().GetString("area")

		model := rncconsole.NewConsoleModel(cmd.Context(), svc, rncconsole.Options{
			RefreshInterval: refresh,
			AreaFilter:      area,
		})

		program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
		if _, err := program.Run(); err != nil {
			return errs.Wrap(err, "run console")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().Duration("refresh", 5*time.Second, "Auto-refresh interval")
	consoleCmd.Flags().String("area", "", "Pre-set area substring filter")
}
