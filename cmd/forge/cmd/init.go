package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uiforge/forge/pkg/catalog"
	"github.com/uiforge/forge/pkg/document"
	"github.com/uiforge/forge/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Create a starter document",
		Long: `Create a new designer document with a small starter layout.

The document is a YAML file holding the canvas, panel flags, and widgets.
Open it in the designer or pass it straight to "forge gen". The path must
not already exist.

Examples:
  forge init myui.yaml
  forge init designs/settings.yaml`,
		Usage: "forge init <document>",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	const usage = "forge init <document>"

	path, err := documentArg(args, usage)
	if err != nil {
		return err
	}
	if ext := filepath.Ext(path); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("document path must end in .yaml or .yml, got %q", path)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	p := starterProject()
	if err := writeProject(path, p); err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	fmt.Printf("Created %s with %d widgets.\n\nNext steps:\n", path, len(p.Widgets))
	fmt.Printf("  forge info %s\n", path)
	fmt.Printf("  forge gen %s -o %s.go\n", path, name)
	return nil
}

// starterProject lays out a small form so a fresh document generates
// something visible on the first run.
func starterProject() *document.Project {
	p := document.NewProject()
	const grid = 8

	catalog.Place(p, document.KindHeading, graphics.Offset{X: 160, Y: 48}, document.AreaCenter, grid)
	catalog.Place(p, document.KindLabel, graphics.Offset{X: 140, Y: 110}, document.AreaCenter, grid)
	catalog.Place(p, document.KindTextEdit, graphics.Offset{X: 170, Y: 160}, document.AreaCenter, grid)
	catalog.Place(p, document.KindCheckbox, graphics.Offset{X: 150, Y: 215}, document.AreaCenter, grid)
	catalog.Place(p, document.KindButton, graphics.Offset{X: 130, Y: 270}, document.AreaCenter, grid)
	catalog.Place(p, document.KindButton, graphics.Offset{X: 90, Y: 48}, document.AreaTop, grid)
	catalog.Place(p, document.KindLabel, graphics.Offset{X: 110, Y: 48}, document.AreaBottom, grid)

	return p
}
