package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uiforge/forge/cmd/forge/internal/config"
	"github.com/uiforge/forge/pkg/codegen"
)

func init() {
	RegisterCommand(&Command{
		Name:  "gen",
		Short: "Generate Go source from a document",
		Long: `Generate Go source code from a designer document.

The output targets the cimgui-go immediate-mode bindings. Defaults for the
module path, app name, output format, and comment style come from a
forge.yaml next to the document and can be overridden with flags.

Formats:
  single      one self-contained main.go (default)
  separate    go.mod and main.go framed with FILE markers
  ui          state struct and UI function only, for embedding

Examples:
  forge gen myui.yaml
  forge gen -format ui myui.yaml
  forge gen -format separate -o out.txt myui.yaml
  forge gen -comments=false myui.yaml`,
		Usage: "forge gen [flags] <document>",
		Run:   runGen,
	})
}

type genOptions struct {
	format   string
	output   string
	comments string
	module   string
}

func runGen(args []string) error {
	const usage = "forge gen [flags] <document>"

	var opts genOptions
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-format" || arg == "--format":
			if i+1 >= len(args) {
				return fmt.Errorf("-format requires a value (single, separate, or ui)")
			}
			i++
			opts.format = args[i]
		case strings.HasPrefix(arg, "-format="), strings.HasPrefix(arg, "--format="):
			opts.format = arg[strings.Index(arg, "=")+1:]
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("-o requires a file path")
			}
			i++
			opts.output = args[i]
		case strings.HasPrefix(arg, "-o="), strings.HasPrefix(arg, "--output="):
			opts.output = arg[strings.Index(arg, "=")+1:]
		case arg == "-module" || arg == "--module":
			if i+1 >= len(args) {
				return fmt.Errorf("-module requires a module path")
			}
			i++
			opts.module = args[i]
		case strings.HasPrefix(arg, "-module="), strings.HasPrefix(arg, "--module="):
			opts.module = arg[strings.Index(arg, "=")+1:]
		case arg == "-comments" || arg == "--comments":
			opts.comments = "true"
		case strings.HasPrefix(arg, "-comments="), strings.HasPrefix(arg, "--comments="):
			opts.comments = arg[strings.Index(arg, "=")+1:]
		default:
			rest = append(rest, arg)
		}
	}

	path, err := documentArg(rest, usage)
	if err != nil {
		return err
	}

	p, err := loadProject(path)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(filepath.Dir(path))
	if err != nil {
		return err
	}

	if opts.format == "" {
		opts.format = cfg.Format
	}
	format, err := parseFormat(opts.format)
	if err != nil {
		return err
	}

	comments := cfg.Comments
	switch opts.comments {
	case "":
	case "true":
		comments = true
	case "false":
		comments = false
	default:
		return fmt.Errorf("-comments must be true or false, got %q", opts.comments)
	}

	modulePath := cfg.ModulePath
	if opts.module != "" {
		modulePath = opts.module
	}

	g := codegen.Generator{
		ModulePath:   modulePath,
		AppName:      cfg.AppName,
		WindowWidth:  cfg.Width,
		WindowHeight: cfg.Height,
	}
	out := g.Generate(p, format, comments)

	if opts.output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	fmt.Printf("Generated %s (%s, %d widgets)\n", opts.output, format.DisplayName(), len(p.Widgets))
	return nil
}

func parseFormat(s string) (codegen.Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "single-file":
		return codegen.SingleFile, nil
	case "separate", "separate-files", "files":
		return codegen.SeparateFiles, nil
	case "ui", "ui-only", "function":
		return codegen.UIOnly, nil
	default:
		return codegen.SingleFile, fmt.Errorf("unknown format %q (want single, separate, or ui)", s)
	}
}
