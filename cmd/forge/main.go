package main

import (
	"os"

	"github.com/uiforge/forge/cmd/forge/cmd"
	"github.com/uiforge/forge/pkg/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		errors.Report(errors.Coerce("forge", err))
		os.Exit(1)
	}
}
