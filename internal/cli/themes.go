package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/growwithdv/Modern-Calculator/internal/config"
	"github.com/growwithdv/Modern-Calculator/internal/symbol"
	"github.com/growwithdv/Modern-Calculator/internal/ui"
)

// newThemesCommand creates the themes command with subcommands
func newThemesCommand() *cobra.Command {
	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List and switch color themes",
		Long: `List the available color themes and persist a choice.

The active theme comes from configuration and can also be switched live in
the calculator with the t key.`,
		RunE: runThemesList,
	}

	themesCmd.AddCommand(newThemesListCommand())
	themesCmd.AddCommand(newThemesSetCommand())

	return themesCmd
}

func newThemesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE:  runThemesList,
	}
}

func runThemesList(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	styled := ui.ColorEnabled(cfg.Output.ColorMode)

	fmt.Printf("%s Available themes:\n\n", symbol.Get("theme"))
	for _, name := range ui.GetAvailableThemes() {
		marker := "  "
		label := name
		if name == cfg.Theme.Name {
			marker = symbol.Get("pointer") + " "
			if styled {
				label = ui.GetStyles().Success.Render(name)
			}
		}
		fmt.Printf("  %s%s\n", marker, label)
	}
	fmt.Println()
	fmt.Printf("%s Switch with: modcalc themes set <name>\n", symbol.Get("bulb"))
	return nil
}

func newThemesSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "set <name>",
		Short:   "Set and persist the active theme",
		Example: `  modcalc themes set high-contrast`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !ui.SetThemeByName(name) {
				return fmt.Errorf("unknown theme: %s (available: %s)",
					name, strings.Join(ui.GetAvailableThemes(), ", "))
			}

			cfg := GetGlobalConfig()
			cfg.Theme.Name = name
			path := config.SavePath()
			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}

			fmt.Printf("%s Theme set to %s (saved to %s)\n", symbol.Get("success"), name, path)
			return nil
		},
	}
}
