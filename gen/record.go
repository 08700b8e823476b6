// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package gen

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"ariga.io/structwire/plan"
	"ariga.io/structwire/schema"

	"github.com/go-openapi/inflect"
)

type (
	// record is the template data of a struct.
	record struct {
		*plan.Plan
		Name     string   // Go type name.
		Fields   []*field // In wire order.
		VarField *field   // Optional.
		LenField *field   // Optional.
		// Tail reports if fields follow the variable field.
		Tail bool
	}

	// field is the template data of a struct field.
	field struct {
		*schema.Field
		Atom   plan.Atom
		GoName string
		GoType string
		Param  string // Parameter name in the field-list Pack function.
		At     string // Offset expression in inline code.
		End    string // End offset expression of fixed-width fields.
	}
)

// methods of the generated record types, which fields cannot shadow.
var methods = map[string]bool{
	"Size":   true,
	"Pack":   true,
	"Unpack": true,
	"Send":   true,
	"Recv":   true,
}

// reserved identifiers that parameters and locals of the generated
// functions cannot use.
var reserved = map[string]bool{
	"binary": true, "buf": true, "byte": true, "copy": true, "err": true,
	"int": true, "io": true, "len": true, "length": true, "n": true, "nil": true,
	"off": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"wire": true,
}

func newRecord(p *plan.Plan) (*record, error) {
	name, err := ident(p.Struct.Name, true)
	if err != nil {
		return nil, err
	}
	r := &record{Plan: p, Name: name, Fields: make([]*field, len(p.Struct.Fields))}
	names := make(map[string]string)
	for i, f := range p.Struct.Fields {
		fd := &field{Field: f, Atom: p.Atoms[i]}
		if fd.GoName, err = ident(f.Name, true); err != nil {
			return nil, fmt.Errorf("gen: struct %q: %w", p.Struct.Name, err)
		}
		if methods[fd.GoName] {
			fd.GoName += "_"
		}
		if prev, ok := names[fd.GoName]; ok {
			return nil, &NameConflictError{Ident: name + "." + fd.GoName, Names: []string{prev, f.Name}}
		}
		names[fd.GoName] = f.Name
		fd.Param, _ = ident(f.Name, false)
		if reserved[fd.Param] || fd.Param == r.FieldsVar() || token.IsKeyword(fd.Param) {
			fd.Param += "_"
		}
		fd.GoType = "[]byte"
		if fd.Atom.Kind == plan.FixedInt {
			fd.GoType = "uint" + strconv.Itoa(fd.Atom.Width*8)
		}
		fd.At, fd.End = offsets(p, i)
		if fd.Atom.Kind == plan.LengthPrefixed {
			r.VarField, r.LenField = fd, r.Fields[fd.Atom.LengthRef]
			r.Tail = i < len(p.Struct.Fields)-1
		}
		r.Fields[i] = fd
	}
	return r, nil
}

// idents returns the package-level identifiers declared for the record.
func (r *record) idents() []string {
	return []string{r.Name, r.Name + "Format", r.Name + "FixedSize", "Pack" + r.Name + "Fields", r.FieldsVar()}
}

// FieldsVar returns the name of the variable holding the schema field names.
func (r *record) FieldsVar() string {
	id, _ := ident(r.Struct.Name, false)
	return id + "Fields"
}

// Bits returns the bit size of an integer field.
func (f *field) Bits() int { return f.Atom.Width * 8 }

// IsInt reports if the field is an integer.
func (f *field) IsInt() bool { return f.Atom.Kind == plan.FixedInt }

// IsBlock reports if the field is a fixed-size byte block.
func (f *field) IsBlock() bool { return f.Atom.Kind == plan.FixedBlock }

// IsVar reports if the field is the variable-length field.
func (f *field) IsVar() bool { return f.Atom.Kind == plan.LengthPrefixed }

// initialisms are kept upper-case in identifiers, as golint suggests.
var initialisms = map[string]bool{
	"ACL": true, "API": true, "ASCII": true, "CPU": true, "DNS": true,
	"EOF": true, "GUID": true, "HTTP": true, "ID": true, "IP": true,
	"JSON": true, "RPC": true, "SQL": true, "SSH": true, "TCP": true,
	"TLS": true, "TTL": true, "UDP": true, "UID": true, "UUID": true,
	"URI": true, "URL": true, "UTF8": true, "XML": true,
}

// ident returns the Go identifier of a schema name: "request_id" becomes
// RequestID, or requestID when not exported.
func ident(name string, exported bool) (string, error) {
	var b strings.Builder
	for i, w := range strings.Split(inflect.Underscore(name), "_") {
		switch up := strings.ToUpper(w); {
		case w == "":
		case i == 0 && !exported:
			b.WriteString(w)
		case initialisms[up]:
			b.WriteString(up)
		default:
			b.WriteString(inflect.Capitalize(w))
		}
	}
	id := b.String()
	if id == "" || !token.IsIdentifier(id) {
		return "", fmt.Errorf("gen: name %q cannot be mapped to a Go identifier", name)
	}
	return id, nil
}

// offsets renders the start and end offset expressions of the i-th field.
// Fields after the variable-length field are located relative to the off
// variable set at its end. The end is left empty for variable fields.
func offsets(p *plan.Plan, i int) (at, end string) {
	pos, base := p.Offset(i), ""
	if pos == -1 {
		pos, base = p.TailOffset(i), "off"
	}
	render := func(n int) string {
		switch {
		case base == "":
			return strconv.Itoa(n)
		case n == 0:
			return base
		default:
			return base + "+" + strconv.Itoa(n)
		}
	}
	at = render(pos)
	if p.Atoms[i].Kind != plan.LengthPrefixed {
		end = render(pos + p.Atoms[i].Width)
	}
	return at, end
}
