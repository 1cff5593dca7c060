package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/bestinvest/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "bestinvest-tui [config-file]",
	Short: "Interactive mortgage prepayment vs investing calculator",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without a config file the calculator starts from its default inputs
		configPath := ""
		if len(args) == 1 {
			configPath = args[0]
			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				return fmt.Errorf("config file not found: %s", configPath)
			}
		}
		assetsPath, _ := cmd.Flags().GetString("assets")

		p := tea.NewProgram(
			tui.NewModel(configPath, assetsPath),
			tea.WithAltScreen(),
		)

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().String("assets", "", "Path to the asset dataset JSON (default: embedded dataset)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
