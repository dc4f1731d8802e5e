package main

import (
	"os"

	"github.com/atomicstack/pkgpick/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	os.Exit(cmd.Execute())
}
