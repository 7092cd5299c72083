package cmd

import (
	"fmt"

	"github.com/uiforge/forge/pkg/preview"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Summarize a document",
		Long: `Print a plain-text summary of a designer document: canvas size,
panel flags, and every widget grouped by dock area.

Examples:
  forge info myui.yaml`,
		Usage: "forge info <document>",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	path, err := documentArg(args, "forge info <document>")
	if err != nil {
		return err
	}
	p, err := loadProject(path)
	if err != nil {
		return err
	}
	fmt.Print(preview.Render(p))
	return nil
}
