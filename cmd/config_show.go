package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"facpoints/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  facpoints config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
			fmt.Println("Configuration:")
			fmt.Printf("db_path: %s\n", cfg.DBPath)
			fmt.Printf("scoring: %d\n", len(cfg.Scoring))
			for i, override := range cfg.Scoring {
				fmt.Printf("scoring[%d].key: %s\n", i, override.Key)
				fmt.Printf("scoring[%d].base_points: %d\n", i, override.BasePoints)
				fmt.Printf("scoring[%d].modifier: %s\n", i, override.Modifier)
				fmt.Printf("scoring[%d].max_count: %d\n", i, override.MaxCount)
				fmt.Printf("scoring[%d].max_points: %d\n", i, override.MaxPoints)
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
