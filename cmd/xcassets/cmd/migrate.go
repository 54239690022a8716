// Copyright © 2018 One Concern

package cmd

import (
	"github.com/fatih/color"
	"github.com/oneconcern/xcassets/pkg/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const completionMessage = "Migration complete"

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Build an asset catalog from a folder of images",
	Long: `Build an asset catalog from a flat folder of images.

The destination is removed then rebuilt from scratch: manual edits made to the catalog are lost.
Since this is destructive, an existing destination is only replaced when --force is set.

Images sharing a base name (e.g. logo.png and logo.jpg) cannot be migrated together.

Example:
	xcassets migrate --source ./Assets --destination ./Assets.xcassets --force
`,
	Run: func(cmd *cobra.Command, args []string) {
		if config.Source == "" || config.Destination == "" {
			wrapFatalln("--source and --destination are required", nil)
			return
		}
		builder, err := catalog.New(config.Source, config.Destination,
			catalog.Logger(logger.With(zap.String("command", "migrate"))),
			catalog.Overwrite(config.Force),
		)
		if err != nil {
			wrapFatalln("invalid paths", err)
			return
		}
		logger.Debug("migrating", zap.String("source", builder.Source()), zap.String("destination", builder.Destination()))
		if _, err = builder.Build(cmd.Context()); err != nil {
			wrapFatalln("migration failed", err)
			return
		}
		infoLogger.Println(color.GreenString(completionMessage))
	},
}

func init() {
	addSourceFlag(migrateCmd)
	addDestinationFlag(migrateCmd)
	addForceFlag(migrateCmd)

	rootCmd.AddCommand(migrateCmd)
}
