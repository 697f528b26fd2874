package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long: `List built-in themes plus any custom themes found in the themes
directory. Custom themes are YAML files; drop one in the directory and
its filename (without extension) becomes the theme name.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	loaded, errs := styles.DiscoverCustomThemes()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  %s\n", name)
	}

	if len(loaded) > 0 {
		fmt.Fprintf(out, "\nCustom themes (%s):\n", styles.ThemesDir())
		for _, name := range loaded {
			fmt.Fprintf(out, "  %s\n", name)
		}
	} else {
		fmt.Fprintf(out, "\nNo custom themes in %s\n", styles.ThemesDir())
	}

	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return nil
}
