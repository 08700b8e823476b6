// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package plan resolves struct fields into wire encoding atoms and computes,
// for each struct, its format signature and size expression.
package plan

import (
	"fmt"
	"strconv"
	"strings"

	"ariga.io/structwire/schema"
)

// AtomKind describes how a field is laid out on the wire.
type AtomKind uint8

// List of atom kinds.
const (
	// FixedInt is an unsigned integer of Width bytes in network byte order.
	FixedInt AtomKind = iota + 1
	// FixedBlock is an opaque byte block of exactly Width bytes.
	FixedBlock
	// LengthPrefixed is an opaque byte block whose length is the value of
	// the integer field referenced by LengthRef.
	LengthPrefixed
)

// String implements fmt.Stringer.
func (k AtomKind) String() string {
	switch k {
	case FixedInt:
		return "FixedInt"
	case FixedBlock:
		return "FixedBlock"
	case LengthPrefixed:
		return "LengthPrefixed"
	default:
		return "AtomKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type (
	// An Atom is the resolved wire encoding of a single field.
	Atom struct {
		Kind  AtomKind
		Width int    // Width in bytes. Zero for LengthPrefixed.
		Code  string // Format code, e.g. "s" or "8B".
		// LengthRef is the index of the field carrying the length of a
		// LengthPrefixed atom. It is -1 for all other kinds.
		LengthRef int
	}

	// A Plan is the encoding plan of a struct.
	Plan struct {
		Struct *schema.Struct
		Atoms  []Atom // One atom per field, in field order.
		// Format is the format signature consumed by the generic codec engine.
		Format string
		// FixedSize is the sum of the widths of the fixed atoms.
		FixedSize int
		// VarField is the index of the variable-length field, or -1.
		VarField int
		// LengthRef is the index of the field supplying the runtime length
		// of VarField, or -1.
		LengthRef int
	}
)

type (
	// MultipleVariableFieldsError is returned when a struct holds more than
	// one variable-length field.
	MultipleVariableFieldsError struct {
		Struct string
		Fields []string
	}

	// MissingLengthFieldError is returned when a variable-length field is not
	// immediately preceded by an integer field carrying its length.
	MissingLengthFieldError struct {
		Struct, Field string
	}

	// DuplicateFieldError is returned when two fields share a name.
	DuplicateFieldError struct {
		Struct, Field string
	}

	// UnsupportedTypeError is returned for field types with no encoding.
	UnsupportedTypeError struct {
		Type schema.Type
	}
)

func (e *MultipleVariableFieldsError) Error() string {
	return fmt.Sprintf("plan: struct %q has multiple variable-length fields: %s", e.Struct, strings.Join(e.Fields, ", "))
}

func (e *MissingLengthFieldError) Error() string {
	return fmt.Sprintf("plan: variable-length field %s.%s must follow an integer length field", e.Struct, e.Field)
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("plan: duplicate field %s.%s", e.Struct, e.Field)
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("plan: unsupported type %T", e.Type)
}

// Resolve maps a field type to its wire encoding atom. The LengthRef of
// LengthPrefixed atoms is left unset (-1) and bound by Build.
func Resolve(t schema.Type) (Atom, error) {
	switch t := t.(type) {
	case *schema.IntegerType:
		code, ok := intCodes[t.Size]
		if !ok {
			return Atom{}, &UnsupportedTypeError{Type: t}
		}
		return Atom{Kind: FixedInt, Width: t.Size, Code: code, LengthRef: -1}, nil
	case *schema.FixedBytesType:
		return Atom{Kind: FixedBlock, Width: t.Size, Code: strconv.Itoa(t.Size) + "B", LengthRef: -1}, nil
	case *schema.BytesType:
		return Atom{Kind: LengthPrefixed, Code: "B", LengthRef: -1}, nil
	default:
		return Atom{}, &UnsupportedTypeError{Type: t}
	}
}

var intCodes = map[int]string{1: "c", 2: "s", 4: "i", 8: "l"}

// Build computes the encoding plan of a struct. A struct without fields,
// for example after all of them were dropped for unknown types, has an
// empty format and a zero size.
func Build(s *schema.Struct) (*Plan, error) {
	p := &Plan{
		Struct:    s,
		Atoms:     make([]Atom, len(s.Fields)),
		VarField:  -1,
		LengthRef: -1,
	}
	var variable []string
	for _, f := range s.Fields {
		if _, ok := f.Type.(*schema.BytesType); ok {
			variable = append(variable, f.Name)
		}
	}
	if len(variable) > 1 {
		return nil, &MultipleVariableFieldsError{Struct: s.Name, Fields: variable}
	}
	var (
		b     strings.Builder
		names = make(map[string]bool, len(s.Fields))
	)
	for i, f := range s.Fields {
		if names[f.Name] {
			return nil, &DuplicateFieldError{Struct: s.Name, Field: f.Name}
		}
		names[f.Name] = true
		a, err := Resolve(f.Type)
		if err != nil {
			return nil, fmt.Errorf("plan: field %s.%s: %w", s.Name, f.Name, err)
		}
		if a.Kind == LengthPrefixed {
			if i == 0 || !schema.IsInteger(s.Fields[i-1].Type) {
				return nil, &MissingLengthFieldError{Struct: s.Name, Field: f.Name}
			}
			a.LengthRef = i - 1
			p.VarField, p.LengthRef = i, i-1
		}
		p.Atoms[i] = a
		p.FixedSize += a.Width
		b.WriteString(a.Code)
	}
	p.Format = b.String()
	return p, nil
}

// BuildAll builds the plans of all structs in the schema. Structs that fail
// are reported to r and excluded from the result.
func BuildAll(s *schema.Schema, r schema.Reporter) []*Plan {
	if r == nil {
		r = schema.NopReporter
	}
	plans := make([]*Plan, 0, len(s.Structs))
	for _, st := range s.Structs {
		p, err := Build(st)
		if err != nil {
			r.Report(err)
			continue
		}
		plans = append(plans, p)
	}
	return plans
}

// Variable reports if the struct has a variable-length field.
func (p *Plan) Variable() bool { return p.VarField != -1 }

// Offset returns the static byte offset of the i-th field. Only fields that
// are located before the variable-length field have a static offset;
// -1 is returned for the others.
func (p *Plan) Offset(i int) int {
	if p.Variable() && i > p.VarField {
		return -1
	}
	off := 0
	for _, a := range p.Atoms[:i] {
		off += a.Width
	}
	return off
}

// HeadSize returns the size of the fixed part located before the variable
// field, or FixedSize for structs without such a field.
func (p *Plan) HeadSize() int {
	if !p.Variable() {
		return p.FixedSize
	}
	return p.Offset(p.VarField)
}

// TailOffset returns the byte offset of the i-th field relative to the end
// of the variable-length field, or -1 if the field is not located after it.
func (p *Plan) TailOffset(i int) int {
	if !p.Variable() || i <= p.VarField {
		return -1
	}
	off := 0
	for _, a := range p.Atoms[p.VarField+1 : i] {
		off += a.Width
	}
	return off
}
