package main

import (
	"os"

	"github.com/roadsim/osm2net/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
