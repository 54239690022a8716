// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/oneconcern/xcassets/pkg/dlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xcassets",
	Short: "xcassets migrates a folder of images to an asset catalog",
	Long: `xcassets migrates a flat folder of images to an Xcode asset catalog.

Every png, jpg or jpeg image found in the source folder gets its own image set in the catalog,
with the image as its 1x variant and empty 2x and 3x slots.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		var err error
		config, err = newConfig()
		if err != nil {
			return err
		}
		logger, err = dlogger.GetLogger(config.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var (
	config *CLIConfig
	logger = zap.NewNop()
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevel(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// keys need to be known to viper so that env variables are picked up by Unmarshal
	viper.SetDefault("source", "")
	viper.SetDefault("destination", "")
	viper.SetDefault("force", false)
	viper.SetDefault("loglevel", dlogger.LogLevelWarn)
	viper.SetEnvPrefix("xcassets")
	if os.Getenv("XCASSETS_CONFIG") != "" {
		// Use config file from the env.
		viper.SetConfigFile(os.Getenv("XCASSETS_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.xcassets")
		viper.SetConfigName("xcassets")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	} else if os.Getenv("XCASSETS_CONFIG") != "" {
		logFatalln(err)
	}
}
