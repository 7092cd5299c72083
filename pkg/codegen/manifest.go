package codegen

import (
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

const targetBindings = "github.com/AllenDang/cimgui-go"
const targetVersion = "v1.3.1"

// manifest synthesizes the go.mod text for SeparateFiles output. Module
// paths that would not survive `go mod init` are replaced with the
// default so generation keeps its never-fails contract.
func (g Generator) manifest() string {
	path := g.ModulePath
	if module.CheckPath(path) != nil {
		path = defaultModulePath
	}

	f := new(modfile.File)
	if err := f.AddModuleStmt(path); err != nil {
		return fallbackManifest()
	}
	if err := f.AddGoStmt("1.24"); err != nil {
		return fallbackManifest()
	}
	if err := f.AddRequire(targetBindings, targetVersion); err != nil {
		return fallbackManifest()
	}

	out, err := f.Format()
	if err != nil {
		return fallbackManifest()
	}
	return string(out)
}

func fallbackManifest() string {
	return "module " + defaultModulePath + "\n\ngo 1.24\n\nrequire " +
		targetBindings + " " + targetVersion + "\n"
}
