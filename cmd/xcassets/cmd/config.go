// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
//
// Values come from flags, then XCASSETS_* environment variables, then the config file.
type CLIConfig struct {
	Source      string `mapstructure:"source" json:"source" yaml:"source"`
	Destination string `mapstructure:"destination" json:"destination" yaml:"destination"`
	Force       bool   `mapstructure:"force" json:"force" yaml:"force"`
	LogLevel    string `mapstructure:"loglevel" json:"loglevel" yaml:"loglevel"`
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to inspect the xcassets config",
	Long: `Commands to inspect the xcassets CLI config.

The config file is xcassets.yaml, looked up in the current directory then in $HOME/.xcassets.
Set XCASSETS_CONFIG to use another file.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
