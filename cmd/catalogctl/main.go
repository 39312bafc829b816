// cmd/catalogctl/main.go
package main

import (
	"fmt"
	"os"
)

const appName = "catalogctl"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
