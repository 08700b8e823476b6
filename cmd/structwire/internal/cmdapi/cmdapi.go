// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package cmdapi holds the structwire commands.
package cmdapi

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/mod/semver"
)

var (
	// Root represents the root command when called without any subcommands.
	Root = &cobra.Command{
		Use:          "structwire",
		Short:        "A compiler of fixed-layout records into binary wire codecs.",
		SilenceUsage: true,
	}

	// GlobalFlags contains flags common to the structwire sub-commands.
	GlobalFlags struct {
		// ConfigPath defines the path to the project file.
		ConfigPath string
		// SelectedGen contains the gen block selected from the project via the --env flag.
		SelectedGen string
		// Vars contains the input variables passed from the CLI to the project file.
		Vars Vars
	}

	// version holds the structwire version. Set by build flag
	// "-X 'ariga.io/structwire/cmd/structwire/internal/cmdapi.version=${version}'"
	version string

	// versionCmd represents the subcommand 'structwire version'.
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Prints this structwire CLI version information.",
		Run: func(cmd *cobra.Command, args []string) {
			v, u := parse(version)
			cmd.Printf("structwire version %s\n%s\n", v, u)
		},
	}
)

func init() {
	Root.AddCommand(versionCmd)
	// Register a global function to clean up the global
	// flags regardless if the command passed or failed.
	cobra.OnFinalize(func() {
		GlobalFlags.ConfigPath = ""
		GlobalFlags.Vars = nil
		GlobalFlags.SelectedGen = ""
	})
}

// parse returns a user facing version and its release notes URL.
// Canary builds point to the latest release.
func parse(v string) (string, string) {
	const releases = "https://github.com/ariga/structwire/releases/"
	switch {
	case !semver.IsValid(v):
		return "- development", releases + "latest"
	case strings.HasSuffix(semver.Prerelease(v), "canary"):
		return v, releases + "latest"
	default:
		return v, releases + "tag/" + v
	}
}

// Version returns the current structwire binary version.
func Version() string {
	return version
}

// Vars holds the input variables passed with --var. It implements
// pflag.Value. Values that read as booleans or integers are typed, so
// they can be assigned to attributes such as "stream" in the project file.
// A variable set more than once holds a tuple of its values.
type Vars map[string]cty.Value

// String implements pflag.Value.String.
func (v Vars) String() string {
	kvs := make([]string, 0, len(v))
	for k := range v {
		kvs = append(kvs, k)
	}
	sort.Strings(kvs)
	for i, k := range kvs {
		kvs[i] = k + ":" + v[k].GoString()
	}
	return "[" + strings.Join(kvs, ", ") + "]"
}

// Set implements pflag.Value.Set.
func (v *Vars) Set(s string) error {
	if *v == nil {
		*v = make(Vars)
	}
	kvs, err := csv.NewReader(strings.NewReader(s)).Read()
	if err != nil {
		return err
	}
	for _, kv := range kvs {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return fmt.Errorf("variables must be format as key=value, got: %q", kv)
		}
		x := varValue(raw)
		switch prev, ok := (*v)[name]; {
		case ok && prev.Type().IsTupleType():
			(*v)[name] = cty.TupleVal(append(prev.AsValueSlice(), x))
		case ok:
			(*v)[name] = cty.TupleVal([]cty.Value{prev, x})
		default:
			(*v)[name] = x
		}
	}
	return nil
}

// Type implements pflag.Value.Type.
func (v *Vars) Type() string {
	return "<name>=<value>"
}

// varValue types the raw value of an input variable. Integers are typed
// only in their canonical form, keeping values like "007" strings.
func varValue(s string) cty.Value {
	switch s {
	case "true":
		return cty.True
	case "false":
		return cty.False
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return cty.NumberIntVal(i)
	}
	return cty.StringVal(s)
}

const (
	flagBackend = "backend"
	flagConfig  = "config"
	flagEnv     = "env"
	flagFile    = "file"
	flagOut     = "out"
	flagPackage = "package"
	flagRuntime = "runtime"
	flagSrc     = "src"
	flagStream  = "stream"
	flagVar     = "var"
)

func addGlobalFlags(set *pflag.FlagSet) {
	set.StringVar(&GlobalFlags.SelectedGen, flagEnv, "", "set which gen block from the config file to use")
	set.Var(&GlobalFlags.Vars, flagVar, "input variables")
	set.StringVarP(&GlobalFlags.ConfigPath, flagConfig, "c", "", "select config (project) file")
}

func addFlagSrc(set *pflag.FlagSet, target *string) {
	set.StringVarP(target, flagSrc, "s", "", "path to the schema file (C header or .hcl)")
}
