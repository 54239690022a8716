// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/oneconcern/xcassets/pkg/catalog"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the layout of an asset catalog",
	Long: `Check the layout of an asset catalog built by the migrate command.

Every image set must hold a Contents.json descriptor, and the image referenced as its 1x variant.
The command exits with a non-zero status when a problem is found.
`,
	Run: func(cmd *cobra.Command, args []string) {
		if config.Destination == "" {
			wrapFatalln("--destination is required", nil)
			return
		}
		inspection, err := catalog.Inspect(cmd.Context(), nil, config.Destination)
		if err != nil {
			wrapFatalln("verification failed", err)
			return
		}
		for _, problem := range inspection.Problems {
			infoLogger.Println(color.RedString("✗"), problem)
		}
		if !inspection.OK() {
			wrapFatalWithCodef(1, "%d problem(s) found in %d image set(s)", len(inspection.Problems), len(inspection.Containers))
			return
		}
		infoLogger.Println(color.GreenString(fmt.Sprintf("%d image set(s) verified", len(inspection.Containers))))
	},
}

func init() {
	addDestinationFlag(verifyCmd)

	rootCmd.AddCommand(verifyCmd)
}
