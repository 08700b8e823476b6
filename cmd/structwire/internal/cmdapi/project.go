// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package cmdapi

import (
	"fmt"
	"path/filepath"
	"strings"

	"ariga.io/structwire/cmd/structwire/internal/cmdlog"
	"ariga.io/structwire/gen"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

const projectFileName = "structwire.hcl"

type (
	// Project represents a structwire.hcl project file.
	Project struct {
		Log  *cmdlog.Log `hcl:"log,block"` // Optional logger config.
		Gens []*Gen      `hcl:"gen,block"` // List of generation targets.
	}

	// Gen represents a generation target of the project. Relative paths
	// are resolved from the directory of the project file.
	Gen struct {
		// Name of the gen block, selected with --env.
		Name string `hcl:"name,label"`

		// Src is the path of the schema file.
		Src string `hcl:"src"`

		// Out is the output directory. Defaults to the directory of Src.
		Out string `hcl:"out,optional"`

		// Package is the package name of the generated files.
		Package string `hcl:"package,optional"`

		// File is the base name of the generated files. Defaults to the
		// name of Src without its extension.
		File string `hcl:"file,optional"`

		// Backend is either "format" (default) or "inline".
		Backend string `hcl:"backend,optional"`

		// Stream enables the Send and Recv methods.
		Stream bool `hcl:"stream,optional"`

		// Runtime overrides the import path of the runtime package.
		Runtime string `hcl:"runtime,optional"`
	}
)

// LoadProject parses and evaluates the project file at path. The input
// variables are available to the project file as var.<name>.
func LoadProject(path string, vars Vars) (*Project, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(vars),
		},
	}
	p := &Project{}
	if diags := gohcl.DecodeBody(f.Body, ctx, p); diags.HasErrors() {
		return nil, diags
	}
	dir := filepath.Dir(path)
	names := make(map[string]bool, len(p.Gens))
	for _, g := range p.Gens {
		if names[g.Name] {
			return nil, fmt.Errorf("duplicate gen block %q in %s", g.Name, path)
		}
		names[g.Name] = true
		g.Src = resolve(dir, g.Src)
		if g.Out != "" {
			g.Out = resolve(dir, g.Out)
		}
	}
	return p, nil
}

// Gen returns the gen block with the given name.
func (p *Project) Gen(name string) (*Gen, bool) {
	for _, g := range p.Gens {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// OutDir returns the output directory of the target.
func (g *Gen) OutDir() string {
	if g.Out != "" {
		return g.Out
	}
	return filepath.Dir(g.Src)
}

// Options returns the generator options of the target.
func (g *Gen) Options() ([]gen.Option, error) {
	base := g.File
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(g.Src), filepath.Ext(g.Src))
	}
	opts := []gen.Option{
		gen.WithSource(filepath.Base(g.Src)),
		gen.WithBaseName(base),
		gen.WithStream(g.Stream),
	}
	if g.Package != "" {
		opts = append(opts, gen.WithPackage(g.Package))
	}
	if g.Runtime != "" {
		opts = append(opts, gen.WithRuntime(g.Runtime))
	}
	if g.Backend != "" {
		b, err := gen.ParseBackend(g.Backend)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gen.WithBackend(b))
	}
	return opts, nil
}

// BackendName returns the name of the selected backend.
func (g *Gen) BackendName() string {
	if g.Backend == "" {
		return gen.GenericFormat.String()
	}
	return g.Backend
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
