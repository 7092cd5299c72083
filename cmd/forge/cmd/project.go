package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uiforge/forge/pkg/document"
	"github.com/uiforge/forge/pkg/errors"
)

// loadProject reads and decodes a designer document from disk.
func loadProject(path string) (*document.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewPath("cmd.loadProject", errors.KindIO, path, err)
	}
	p, err := document.Decode(data)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// writeProject encodes a document and writes it to disk.
func writeProject(path string, p *document.Project) error {
	data, err := document.Encode(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewPath("cmd.writeProject", errors.KindIO, path, err)
	}
	return nil
}

// documentArg validates that exactly one document path was given.
func documentArg(args []string, usage string) (string, error) {
	var paths []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return "", fmt.Errorf("unknown flag %q\n\nUsage: %s", arg, usage)
		}
		paths = append(paths, arg)
	}
	if len(paths) != 1 {
		return "", fmt.Errorf("exactly one document path is required\n\nUsage: %s", usage)
	}
	return filepath.Clean(paths[0]), nil
}
