// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the config used",
	Long:  `Print the config used by the invocation of the xcassets command, merged from the config file and the environment`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := formatConfig(config, xcassetsFlags.format)
		if err != nil {
			wrapFatalln("cannot print config", err)
			return
		}
		infoLogger.Print(out)
	},
}

func formatConfig(cfg *CLIConfig, format string) (string, error) {
	switch format {
	case "yaml":
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "json":
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

func init() {
	addFormatFlag(dumpCmd, "yaml")

	configCmd.AddCommand(dumpCmd)
}
