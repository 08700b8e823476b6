// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package gen emits the Go codecs of struct plans. For each struct, the
// generated declarations file holds the record type and its format and size
// constants, and the definitions file holds the Size, Pack, Unpack and
// field-list Pack functions, and optionally the stream Send and Recv methods.
package gen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"ariga.io/structwire/plan"

	"golang.org/x/mod/module"
)

// Backend selects the encoding strategy of the generated code.
type Backend uint8

// List of backends.
const (
	// GenericFormat delegates encoding to the format engine of the runtime
	// package, driven by the format signature of each struct.
	GenericFormat Backend = iota + 1
	// InlineByteOrder emits offset-by-offset encoding with encoding/binary.
	InlineByteOrder
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case GenericFormat:
		return "format"
	case InlineByteOrder:
		return "inline"
	default:
		return fmt.Sprintf("Backend(%d)", b)
	}
}

// ParseBackend returns the backend named s ("format" or "inline").
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "format":
		return GenericFormat, nil
	case "inline":
		return InlineByteOrder, nil
	default:
		return 0, fmt.Errorf("gen: unknown backend %q", s)
	}
}

// DefaultRuntime is the import path of the runtime package used by the
// generated code.
const DefaultRuntime = "ariga.io/structwire/wire"

// Header is the first line of every generated file.
const Header = "// Code generated by structwire. DO NOT EDIT."

type (
	// Generator emits Go codecs for struct plans.
	Generator struct {
		pkg     string
		base    string
		source  string
		runtime string
		backend Backend
		stream  bool
	}

	// Option configures a Generator.
	Option func(*Generator)

	// Files holds the generated source of a single run.
	Files struct {
		// Base is the base name of the files: the declarations are
		// written to <Base>.go and the definitions to <Base>_codec.go.
		Base string
		Decl []byte
		Def  []byte
	}

	// NameConflictError is returned when two schema names map to the same
	// Go identifier.
	NameConflictError struct {
		Ident string
		Names []string
	}
)

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("gen: %q and %q both map to Go identifier %s", e.Names[0], e.Names[1], e.Ident)
}

// WithPackage sets the package name of the generated files.
func WithPackage(name string) Option {
	return func(g *Generator) {
		g.pkg = name
	}
}

// WithBaseName sets the base name of the generated files.
func WithBaseName(name string) Option {
	return func(g *Generator) {
		g.base = name
	}
}

// WithSource records the schema source in the header of the generated files.
func WithSource(name string) Option {
	return func(g *Generator) {
		g.source = name
	}
}

// WithRuntime sets the import path of the runtime package.
func WithRuntime(path string) Option {
	return func(g *Generator) {
		g.runtime = path
	}
}

// WithBackend sets the encoding backend.
func WithBackend(b Backend) Option {
	return func(g *Generator) {
		g.backend = b
	}
}

// WithStream enables the generation of the Send and Recv methods.
func WithStream(b bool) Option {
	return func(g *Generator) {
		g.stream = b
	}
}

// New returns a Generator configured with the given options.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		pkg:     "structs",
		base:    "structs",
		runtime: DefaultRuntime,
		backend: GenericFormat,
	}
	for _, opt := range opts {
		opt(g)
	}
	if !token.IsIdentifier(g.pkg) || g.pkg == "_" {
		return nil, fmt.Errorf("gen: invalid package name %q", g.pkg)
	}
	if g.base == "" || filepath.Base(g.base) != g.base {
		return nil, fmt.Errorf("gen: invalid base name %q", g.base)
	}
	if err := module.CheckImportPath(g.runtime); err != nil {
		return nil, fmt.Errorf("gen: runtime: %w", err)
	}
	if g.backend != GenericFormat && g.backend != InlineByteOrder {
		return nil, fmt.Errorf("gen: unknown backend %s", g.backend)
	}
	return g, nil
}

var (
	//go:embed template/*.tmpl
	files     embed.FS
	templates = template.Must(template.New("gen").ParseFS(files, "template/*.tmpl"))
)

// Generate emits the codecs of the given plans, in plan order.
func (g *Generator) Generate(plans []*plan.Plan) (*Files, error) {
	f, err := g.file(plans)
	if err != nil {
		return nil, err
	}
	decl, err := g.exec("decl", f)
	if err != nil {
		return nil, err
	}
	def, err := g.exec("def", f)
	if err != nil {
		return nil, err
	}
	return &Files{Base: g.base, Decl: decl, Def: def}, nil
}

func (g *Generator) exec(name string, f *file) ([]byte, error) {
	var b bytes.Buffer
	if err := templates.ExecuteTemplate(&b, name, f); err != nil {
		return nil, fmt.Errorf("gen: execute template %q: %w", name, err)
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format %s file: %w", name, err)
	}
	return src, nil
}

// Save writes the generated files to dir, creating it if needed.
func (f *Files) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, w := range []struct {
		name string
		src  []byte
	}{
		{f.Base + ".go", f.Decl},
		{f.Base + "_codec.go", f.Def},
	} {
		if err := os.WriteFile(filepath.Join(dir, w.name), w.src, 0644); err != nil {
			return fmt.Errorf("gen: write %s: %w", w.name, err)
		}
	}
	return nil
}

// Paths returns the paths of the generated files in dir.
func (f *Files) Paths(dir string) (decl, def string) {
	return filepath.Join(dir, f.Base+".go"), filepath.Join(dir, f.Base+"_codec.go")
}

type (
	// file is the template data of a generation run.
	file struct {
		Header  string
		Source  string
		Package string
		Stream  bool
		Inline  bool
		Imports [][]imp
		Structs []*record
	}
	imp struct {
		Alias, Path string
	}
)

func (g *Generator) file(plans []*plan.Plan) (*file, error) {
	f := &file{
		Header:  Header,
		Source:  g.source,
		Package: g.pkg,
		Stream:  g.stream,
		Inline:  g.backend == InlineByteOrder,
	}
	idents := make(map[string]string)
	for _, p := range plans {
		r, err := newRecord(p)
		if err != nil {
			return nil, err
		}
		for _, id := range r.idents() {
			if prev, ok := idents[id]; ok {
				return nil, &NameConflictError{Ident: id, Names: []string{prev, p.Struct.Name}}
			}
			idents[id] = p.Struct.Name
		}
		f.Structs = append(f.Structs, r)
	}
	var std []imp
	if f.Inline && f.binary() {
		std = append(std, imp{Path: "encoding/binary"})
	}
	if f.Stream {
		std = append(std, imp{Path: "io"})
	}
	rt := imp{Path: g.runtime}
	if path.Base(g.runtime) != "wire" {
		rt.Alias = "wire"
	}
	if len(std) > 0 {
		f.Imports = append(f.Imports, std)
	}
	f.Imports = append(f.Imports, []imp{rt})
	return f, nil
}

// binary reports if the inline code uses encoding/binary.
func (f *file) binary() bool {
	for _, r := range f.Structs {
		for _, fd := range r.Fields {
			if fd.Atom.Kind == plan.FixedInt && fd.Atom.Width > 1 {
				return true
			}
		}
	}
	return false
}
