// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/xcassets/cmd/xcassets/cmd"
)

func main() {
	cmd.Execute()
}
