// Copyright © 2018 One Concern

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/oneconcern/xcassets/cmd/xcassets/cmd.Version=..."
var (
	Version   string
	BuildDate string
	GitCommit string
)

// VersionInfo describes the build of the running binary
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
}

// NewVersionInfo reports "dev" when no version was set at build time
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	if Version != "" {
		ver.Version = Version
	}
	return ver
}

func (v VersionInfo) String() string {
	var buf strings.Builder
	buf.WriteString("Version: " + v.Version + "\n")
	if v.BuildDate != "" {
		buf.WriteString("Build date: " + v.BuildDate + "\n")
	}
	if v.GitCommit != "" {
		buf.WriteString("Commit: " + v.GitCommit + "\n")
	}
	return buf.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version of xcassets",
	Run: func(cmd *cobra.Command, args []string) {
		infoLogger.Print(NewVersionInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
