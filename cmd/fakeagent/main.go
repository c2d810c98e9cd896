package main

import (
	"os"

	"github.com/agency-cli/fakeagent/cmd/fakeagent/cmds"
)

func main() {
	if err := cmds.New().Execute(); err != nil {
		os.Exit(1)
	}
}
