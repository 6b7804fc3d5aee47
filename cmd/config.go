package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tedit/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the stored configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, manager, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		cmd.Printf("%s\n", data)
		if !manager.Exists() {
			cmd.Println("(defaults; no config file present)")
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := loadConfig()
		if err != nil {
			return err
		}
		if manager.Exists() {
			return fmt.Errorf("config file already exists at %s", manager.Path())
		}
		if err := manager.Save(config.DefaultConfig()); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", manager.Path())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := loadConfig()
		if err != nil {
			return err
		}
		cmd.Println(manager.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
