// Command starrating renders and exercises five-star rating controls.
package main

import (
	"os"

	"github.com/gogpu/starrating/cmd/starrating/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
