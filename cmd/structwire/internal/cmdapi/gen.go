// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package cmdapi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ariga.io/structwire/cmd/structwire/internal/cmdlog"
	"ariga.io/structwire/gen"
	"ariga.io/structwire/plan"
	"ariga.io/structwire/schema"
	"ariga.io/structwire/schema/schemahcl"
	"ariga.io/structwire/schema/schemaparse"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func init() {
	Root.AddCommand(genCmd())
	Root.AddCommand(inspectCmd())
}

// targetFlags are the flags that select the generation targets.
type targetFlags struct {
	src, out, pkg, file, backend, runtime string
	stream                                bool
}

func addTargetFlags(set *pflag.FlagSet, flags *targetFlags) {
	addFlagSrc(set, &flags.src)
	set.StringVarP(&flags.out, flagOut, "o", "", "output directory (defaults to the directory of the schema file)")
	set.StringVar(&flags.pkg, flagPackage, "", "package name of the generated files")
	set.StringVar(&flags.file, flagFile, "", "base name of the generated files")
	set.StringVar(&flags.backend, flagBackend, "", `encoding backend: "format" or "inline"`)
	set.BoolVar(&flags.stream, flagStream, false, "generate the Send and Recv stream methods")
	set.StringVar(&flags.runtime, flagRuntime, "", "import path of the runtime package")
}

func genCmd() *cobra.Command {
	var flags targetFlags
	cmd := &cobra.Command{
		Use:   "gen [flags]",
		Short: "Generate Go codecs from a schema file.",
		Long: "'structwire gen' compiles the structs of a schema file into a declarations file\n" +
			"<file>.go and a definitions file <file>_codec.go. Targets are given with flags,\n" +
			"or selected from a project file with --env.",
		Example: `  structwire gen --src structs.h --out ./protocol --package protocol --backend inline --stream
  structwire gen --env protocol --var out=./internal/protocol
  structwire gen -c file://structwire.hcl`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return genRun(cmd, &flags)
		},
	}
	addTargetFlags(cmd.Flags(), &flags)
	addGlobalFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive(flagSrc, flagEnv)
	cmd.MarkFlagsMutuallyExclusive(flagSrc, flagConfig)
	return cmd
}

func genRun(cmd *cobra.Command, flags *targetFlags) error {
	targets, logc, err := selectTargets(flags)
	if err != nil {
		return err
	}
	logger, err := cmdlog.NewLogger(logc, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync()
	for _, t := range targets {
		r := cmdlog.NewReporter(logger.With(zap.String("src", t.Src)))
		plans, err := loadPlans(t.Src, r)
		if err != nil {
			return err
		}
		opts, err := t.Options()
		if err != nil {
			return err
		}
		g, err := gen.New(opts...)
		if err != nil {
			return err
		}
		files, err := g.Generate(plans)
		if err != nil {
			return err
		}
		out := t.OutDir()
		if err := files.Save(out); err != nil {
			return err
		}
		decl, def := files.Paths(out)
		logger.Debug("files written", zap.String("decl", decl), zap.String("def", def))
		report := &cmdlog.GenReport{
			Name:    t.Name,
			Src:     t.Src,
			Backend: t.BackendName(),
			Files:   []string{decl, def},
			Diags:   r.Count(),
		}
		for _, p := range plans {
			report.Structs = append(report.Structs, p.Struct.Name)
		}
		if err := cmdlog.GenTemplate.Execute(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	}
	return nil
}

// selectTargets returns the generation targets given by the flags, or
// selected from the project file.
func selectTargets(flags *targetFlags) ([]*Gen, *cmdlog.Log, error) {
	if flags.src != "" {
		return []*Gen{{
			Src:     flags.src,
			Out:     flags.out,
			Package: flags.pkg,
			File:    flags.file,
			Backend: flags.backend,
			Stream:  flags.stream,
			Runtime: flags.runtime,
		}}, nil, nil
	}
	path := projectPath(GlobalFlags.ConfigPath)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("project file %q was not found; use --%s to compile a schema file directly", path, flagSrc)
	}
	p, err := LoadProject(path, GlobalFlags.Vars)
	if err != nil {
		return nil, nil, err
	}
	if GlobalFlags.SelectedGen == "" {
		if len(p.Gens) == 0 {
			return nil, nil, fmt.Errorf("no gen blocks found in %q", path)
		}
		return p.Gens, p.Log, nil
	}
	g, ok := p.Gen(GlobalFlags.SelectedGen)
	if !ok {
		return nil, nil, fmt.Errorf("gen block %q not found in %q", GlobalFlags.SelectedGen, path)
	}
	return []*Gen{g}, p.Log, nil
}

// projectPath returns the path of the project file. The "file://" scheme
// prefix is accepted.
func projectPath(config string) string {
	if config == "" {
		return projectFileName
	}
	if path, ok := strings.CutPrefix(config, "file://"); ok {
		return filepath.FromSlash(path)
	}
	return config
}

// loadPlans parses the schema file at path and builds the plans of its
// structs. Diagnostics are reported to r.
func loadPlans(path string, r schema.Reporter) ([]*plan.Plan, error) {
	var (
		s   *schema.Schema
		err error
	)
	if filepath.Ext(path) == ".hcl" {
		s, err = schemahcl.ParseFile(path, r)
	} else {
		s, err = schemaparse.ParseFile(path, schemaparse.WithReporter(r))
	}
	if err != nil {
		return nil, err
	}
	return plan.BuildAll(s, r), nil
}
