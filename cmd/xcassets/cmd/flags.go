// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/xcassets/pkg/dlogger"
	"github.com/spf13/cobra"
)

type flagsT struct {
	catalog struct {
		Source      string
		Destination string
		Force       bool
	}
	root struct {
		logLevel string
	}
	format string
}

var xcassetsFlags = flagsT{}

func addSourceFlag(cmd *cobra.Command) string {
	source := "source"
	cmd.Flags().StringVar(&xcassetsFlags.catalog.Source, source, "", "The flat directory holding the images (png, jpg, jpeg)")
	return source
}

func addDestinationFlag(cmd *cobra.Command) string {
	destination := "destination"
	cmd.Flags().StringVar(&xcassetsFlags.catalog.Destination, destination, "",
		"The asset catalog directory, e.g. Assets.xcassets. Its content is removed on every migration")
	return destination
}

func addForceFlag(cmd *cobra.Command) string {
	force := "force"
	cmd.Flags().BoolVar(&xcassetsFlags.catalog.Force, force, false,
		"Wipe the destination if it exists already. Without this flag, an existing destination is an error")
	return force
}

func addLogLevel(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&xcassetsFlags.root.logLevel, loglevel, dlogger.LogLevelWarn,
		"The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return loglevel
}

func addFormatFlag(cmd *cobra.Command, defaultFormat string) string {
	format := "format"
	cmd.Flags().StringVar(&xcassetsFlags.format, format, defaultFormat, "Output format: yaml or json")
	return format
}
