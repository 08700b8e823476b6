// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package schemahcl reads struct schemas written in HCL:
//
//	struct "extension" {
//	  field "code"     { type = uint8 }
//	  field "name_len" { type = uint16 }
//	  field "name"     { type = bytes }
//	  field "tag"      { type = char(4) }
//	}
//
// The types uint8, uint16, uint32, uint64 and bytes are exposed as variables,
// and char(N) as a function. Plain type tokens ("uint16_t") are accepted too.
package schemahcl

import (
	"fmt"
	"os"
	"strconv"

	"ariga.io/structwire/schema"
	"ariga.io/structwire/schema/schemaparse"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

const (
	blockStruct = "struct"
	blockField  = "field"
	attrType    = "type"
)

// EvalContext returns the evaluation context used for field types.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"uint8":  cty.StringVal(schema.TypeUint8),
			"uint16": cty.StringVal(schema.TypeUint16),
			"uint32": cty.StringVal(schema.TypeUint32),
			"uint64": cty.StringVal(schema.TypeUint64),
			"bytes":  cty.StringVal("char *"),
		},
		Functions: map[string]function.Function{
			"char": charFunc(),
		},
	}
}

// charFunc returns the char(N) type function.
func charFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "size", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			var n int
			if err := gocty.FromCtyValue(args[0], &n); err != nil {
				return cty.NilVal, err
			}
			if n <= 0 {
				return cty.NilVal, fmt.Errorf("char size must be positive, got %d", n)
			}
			return cty.StringVal("char[" + strconv.Itoa(n) + "]"), nil
		},
	})
}

// ParseFile parses the HCL schema file at the given path.
func ParseFile(path string, r schema.Reporter) (*schema.Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b, path, r)
}

// Parse converts an HCL schema document into a schema.Schema. Fields with
// types that cannot be evaluated or are unknown are reported to r as
// *schemaparse.UnknownFieldTypeError and dropped. Structural errors (unknown
// blocks or attributes, bad labels) are returned as hcl.Diagnostics.
func Parse(src []byte, filename string, r schema.Reporter) (*schema.Schema, error) {
	if r == nil {
		r = schema.NopReporter
	}
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("schemahcl: unexpected body type %T", f.Body)
	}
	if len(body.Attributes) > 0 {
		return nil, unexpected(body.Attributes)
	}
	var (
		ctx = EvalContext()
		out = &schema.Schema{}
	)
	for _, b := range body.Blocks {
		if b.Type != blockStruct || len(b.Labels) != 1 {
			return nil, blockError(b, "expected a struct block with a single name label")
		}
		s := &schema.Struct{Name: b.Labels[0], Pos: pos(b.TypeRange)}
		if len(b.Body.Attributes) > 0 {
			return nil, unexpected(b.Body.Attributes)
		}
		for _, fb := range b.Body.Blocks {
			if fb.Type != blockField || len(fb.Labels) != 1 {
				return nil, blockError(fb, "expected a field block with a single name label")
			}
			attr, ok := fb.Body.Attributes[attrType]
			if !ok || len(fb.Body.Attributes) != 1 || len(fb.Body.Blocks) > 0 {
				return nil, blockError(fb, fmt.Sprintf("field %q must contain only the %q attribute", fb.Labels[0], attrType))
			}
			fd, err := field(ctx, src, s.Name, fb, attr)
			if err != nil {
				r.Report(err)
				continue
			}
			s.Fields = append(s.Fields, fd)
		}
		out.Structs = append(out.Structs, s)
	}
	return out, nil
}

// field converts a field block. A type that cannot be evaluated or
// resolved is returned as an *schemaparse.UnknownFieldTypeError.
func field(ctx *hcl.EvalContext, src []byte, st string, b *hclsyntax.Block, attr *hclsyntax.Attribute) (*schema.Field, error) {
	fd := &schema.Field{Name: b.Labels[0], Pos: pos(b.TypeRange)}
	v, diags := attr.Expr.Value(ctx)
	if diags.HasErrors() || v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
		return nil, &schemaparse.UnknownFieldTypeError{
			Struct: st,
			Field:  fd.Name,
			Type:   string(attr.Expr.Range().SliceBytes(src)),
			Pos:    fd.Pos,
		}
	}
	t, err := schema.ParseType(v.AsString())
	if err != nil {
		return nil, &schemaparse.UnknownFieldTypeError{Struct: st, Field: fd.Name, Type: v.AsString(), Pos: fd.Pos}
	}
	fd.Type = t
	return fd, nil
}

func pos(r hcl.Range) *schema.Pos {
	return &schema.Pos{Filename: r.Filename, Line: r.Start.Line}
}

func blockError(b *hclsyntax.Block, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Unexpected %q block", b.Type),
		Detail:   detail,
		Subject:  b.DefRange().Ptr(),
	}}
}

func unexpected(attrs hclsyntax.Attributes) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, a := range attrs {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected attribute",
			Detail:   fmt.Sprintf("Attribute %q is not allowed here.", a.Name),
			Subject:  a.SrcRange.Ptr(),
		})
	}
	return diags
}
