package cmd

import (
	"github.com/abhisek/cyberrange/internal/config"
	"github.com/abhisek/cyberrange/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cyberrange",
	Short: "Cybersecurity awareness trainer",
	Long: "CyberRange shows realistic phishing and legitimate messages, grades your call on each one\n" +
		"and coaches you on the signals you missed.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrain(cmd, "", 0)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CYBERRANGE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (overrides CYBERRANGE_CONFIG env var)")
	rootCmd.PersistentFlags().StringP("profile", "P", "", "Training profile; each profile keeps its own progress")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies the
// persistent flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		cfg.Profile = p
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
		if _, err := cfg.Level(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CYBERRANGE_DB or db_path from the config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
