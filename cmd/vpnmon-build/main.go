package main

import (
	"os"

	builder "github.com/grandchild/vpnmon_builder"
)

func main() {
	os.Exit(builder.Run())
}
