// main project file, entry point of the cli
package main

import (
	_ "time/tzdata" // embedded zone database so date localization works everywhere

	"github.com/ewanmcnab/plume/cmd"
)

var version = "dev" // Version set during build with go build -ldflags "-X main.version=1.2.3"

func main() {
	cmd.Execute(version)
}
