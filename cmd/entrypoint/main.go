package main

import (
	// Import the cmd directory with root.go
	"github.com/redjax/forecast/cmd"
)

func main() {
	cmd.Execute()
}
