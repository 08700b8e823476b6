// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package cmdlog holds the loggers and the report templates of the
// structwire commands.
package cmdlog

import (
	"bytes"
	"strconv"
	"text/template"

	"ariga.io/structwire/plan"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	// ColorTemplateFuncs are globally available functions to color strings in a report template.
	ColorTemplateFuncs = template.FuncMap{
		"cyan":   color.CyanString,
		"green":  color.HiGreenString,
		"red":    color.HiRedString,
		"yellow": color.YellowString,
	}
)

// GenReport summarizes a 'structwire gen' run.
type GenReport struct {
	Name    string   // Name of the gen block, if loaded from a project file.
	Src     string   // Schema source.
	Backend string   // Encoding backend.
	Structs []string // Generated structs, in declaration order.
	Files   []string // Written files.
	Diags   int      // Number of reported diagnostics.
}

// GenTemplate holds the default template of the 'gen' command.
var GenTemplate = template.Must(template.New("gen").Funcs(ColorTemplateFuncs).Parse(
	`{{ with .Name }}{{ cyan . }}: {{ end }}Generated {{ green "%d" (len .Structs) }} codecs from {{ cyan .Src }} ({{ .Backend }})
{{- range .Files }}
  {{ yellow "--" }} {{ . }}
{{- end }}
{{- if .Diags }}
  {{ red "--" }} {{ red "%d" .Diags }} diagnostics reported
{{- end }}
`))

// InspectTemplate holds the default template of the 'inspect' command.
var InspectTemplate = template.Must(template.New("inspect").
	Funcs(ColorTemplateFuncs).
	Funcs(template.FuncMap{"table": table}).
	Parse(`{{ table .Plans }}
{{- if .Diags }}{{ red "%d" .Diags }} diagnostics reported
{{ end }}`))

// InspectReport is the input of the 'inspect' template.
type InspectReport struct {
	Plans []*plan.Plan
	Diags int
}

// table renders the plans as a table.
func table(plans []*plan.Plan) string {
	var buf bytes.Buffer
	tbl := tablewriter.NewWriter(&buf)
	tbl.SetHeader([]string{
		"Struct",
		"Format",
		"Fixed Size",
		"Head Size",
		"Variable Field",
		"Length Field",
	})
	for _, p := range plans {
		row := []string{p.Struct.Name, p.Format, strconv.Itoa(p.FixedSize), strconv.Itoa(p.HeadSize()), "", ""}
		if p.Variable() {
			row[4] = p.Struct.Fields[p.VarField].Name
			row[5] = p.Struct.Fields[p.LengthRef].Name
		}
		tbl.Append(row)
	}
	tbl.Render()
	return buf.String()
}
