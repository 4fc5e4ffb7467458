// Package main provides the entrypoint for fitbit-webhook-app.
package main

import (
	"os"

	"github.com/isometry/fitbit-webhook-app/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
