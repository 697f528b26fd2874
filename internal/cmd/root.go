package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stockdeck/stockdeck/internal/config"
	"github.com/stockdeck/stockdeck/internal/logging"
	"github.com/stockdeck/stockdeck/internal/tui"
	"github.com/stockdeck/stockdeck/internal/tui/styles"
)

var rootCmd = &cobra.Command{
	Use:   "stockdeck",
	Short: "Terminal inventory dashboard",
	Long: `Stockdeck is a terminal dashboard for inventory operations: products,
purchase orders, stock on hand and forecasts, navigated through a
collapsible sidebar.`,
	RunE: runShell,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/stockdeck/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().String("theme", "", "color theme for this run (overrides tui.theme)")
	_ = viper.BindPFlag("tui.theme", rootCmd.Flags().Lookup("theme"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/stockdeck")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("STOCKDECK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., STOCKDECK_TUI_THEME for tui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Custom themes must be registered before the theme name is checked.
	if _, errs := styles.DiscoverCustomThemes(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: custom theme skipped: %v\n", e)
		}
	}
	if !styles.IsValidTheme(cfg.TUI.Theme) {
		return fmt.Errorf("unknown theme %q (valid: %s)", cfg.TUI.Theme, strings.Join(styles.ValidThemes(), ", "))
	}
	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(config.ConfigDir(), cfg.Logging.Level, logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		})
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
	}
	defer logger.Close()

	app := tui.New(cfg, logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
