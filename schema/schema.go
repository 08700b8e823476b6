// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package schema describes fixed-layout record definitions ("structs") that
// are compiled into binary wire codecs.
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// A Schema holds the struct definitions of one schema document,
	// in declaration order.
	Schema struct {
		Structs []*Struct
	}

	// A Struct represents a record definition. The order of its fields
	// is the order of their encoding on the wire.
	Struct struct {
		Name   string
		Fields []*Field
		Pos    *Pos
	}

	// A Field represents a single member of a struct.
	Field struct {
		Name string
		Type Type
		Pos  *Pos
	}

	// A Type represents a field type.
	Type interface {
		typ()
		fmt.Stringer
	}

	// IntegerType represents an unsigned fixed-width integer type.
	// Multi-byte integers are always encoded in network byte order.
	IntegerType struct {
		T    string // uint8_t, uint16_t, uint32_t or uint64_t.
		Size int    // Size in bytes.
	}

	// FixedBytesType represents a byte block capped at Size bytes
	// (char[N]). It occupies exactly Size bytes on the wire.
	FixedBytesType struct {
		Size int
	}

	// BytesType represents a variable-length byte field (char *). Its
	// length is carried by the integer field that immediately precedes it.
	BytesType struct{}

	// Pos describes the source position of a schema element.
	Pos struct {
		Filename string
		Line     int
	}
)

// Integer type names.
const (
	TypeUint8  = "uint8_t"
	TypeUint16 = "uint16_t"
	TypeUint32 = "uint32_t"
	TypeUint64 = "uint64_t"
)

// Struct returns the first struct that matched the given name.
func (s *Schema) Struct(name string) (*Struct, bool) {
	for _, st := range s.Structs {
		if st.Name == name {
			return st, true
		}
	}
	return nil, false
}

// Field returns the first field that matched the given name.
func (s *Struct) Field(name string) (*Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// NewStruct creates a new Struct with the given fields.
func NewStruct(name string, fields ...*Field) *Struct {
	return &Struct{Name: name, Fields: fields}
}

// NewField creates a new Field.
func NewField(name string, t Type) *Field {
	return &Field{Name: name, Type: t}
}

// NewUint8Field creates a new uint8_t field.
func NewUint8Field(name string) *Field { return NewField(name, &IntegerType{T: TypeUint8, Size: 1}) }

// NewUint16Field creates a new uint16_t field.
func NewUint16Field(name string) *Field { return NewField(name, &IntegerType{T: TypeUint16, Size: 2}) }

// NewUint32Field creates a new uint32_t field.
func NewUint32Field(name string) *Field { return NewField(name, &IntegerType{T: TypeUint32, Size: 4}) }

// NewUint64Field creates a new uint64_t field.
func NewUint64Field(name string) *Field { return NewField(name, &IntegerType{T: TypeUint64, Size: 8}) }

// NewFixedBytesField creates a new char[size] field.
func NewFixedBytesField(name string, size int) *Field {
	return NewField(name, &FixedBytesType{Size: size})
}

// NewBytesField creates a new char * field.
func NewBytesField(name string) *Field { return NewField(name, &BytesType{}) }

// String implements fmt.Stringer.
func (t *IntegerType) String() string { return t.T }

// String implements fmt.Stringer.
func (t *FixedBytesType) String() string { return "char[" + strconv.Itoa(t.Size) + "]" }

// String implements fmt.Stringer.
func (*BytesType) String() string { return "char *" }

// String implements fmt.Stringer.
func (p *Pos) String() string {
	if p == nil {
		return ""
	}
	if p.Filename == "" {
		return "line " + strconv.Itoa(p.Line)
	}
	return p.Filename + ":" + strconv.Itoa(p.Line)
}

func (*IntegerType) typ()    {}
func (*FixedBytesType) typ() {}
func (*BytesType) typ()      {}

// ParseType parses a type token as written in a schema document:
// "uint8_t", "uint16_t", "uint32_t", "uint64_t", "char *" (or "char*")
// and "char[N]". An error is returned for unknown tokens.
func ParseType(token string) (Type, error) {
	t := strings.TrimSpace(token)
	switch t {
	case TypeUint8:
		return &IntegerType{T: t, Size: 1}, nil
	case TypeUint16:
		return &IntegerType{T: t, Size: 2}, nil
	case TypeUint32:
		return &IntegerType{T: t, Size: 4}, nil
	case TypeUint64:
		return &IntegerType{T: t, Size: 8}, nil
	}
	if strings.HasPrefix(t, "char") {
		rest := strings.TrimSpace(strings.TrimPrefix(t, "char"))
		switch {
		case rest == "*":
			return &BytesType{}, nil
		case strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]"):
			n, err := strconv.Atoi(strings.TrimSpace(rest[1 : len(rest)-1]))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("schema: invalid size in type %q", token)
			}
			return &FixedBytesType{Size: n}, nil
		}
	}
	return nil, fmt.Errorf("schema: unknown type %q", token)
}

// IsInteger reports whether the type is an integer type.
func IsInteger(t Type) bool {
	_, ok := t.(*IntegerType)
	return ok
}
