package main

import (
	"os"

	"github.com/ball6847/xclip-win32yank-wrapper/cmd"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

func main() {
	cmd.Version = Version
	cmd.BuildTime = BuildTime
	cmd.GitCommit = GitCommit

	os.Exit(cmd.Execute())
}
