package main

import (
	"fmt"
	"os"

	"github.com/notifyme/notifyme/cmd"
)

// Overridden at build time via ldflags.
var (
	version   = "0.0.0"
	buildType = "dev"
	date      = "unknown"
	commit    = "unknown"
)

func main() {
	err := cmd.Execute(os.Args, cmd.BuildArgs{
		Version:   version,
		BuildType: buildType,
		Date:      date,
		Commit:    commit,
	})
	if err != nil {
		fmt.Println("notifyme:", err.Error())
		os.Exit(1)
	}
}
