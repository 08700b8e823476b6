// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package schemahcl_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ariga.io/structwire/schema"
	"ariga.io/structwire/schema/schemahcl"
	"ariga.io/structwire/schema/schemaparse"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var diags schema.Diagnostics
	s, err := schemahcl.Parse([]byte(`
struct "extension" {
  field "code"     { type = uint8 }
  field "name_len" { type = uint16 }
  field "name"     { type = bytes }
}

struct "hello" {
  field "magic"  { type = char(4) }
  field "nonce"  { type = uint64 }
  field "flags"  { type = "uint32_t" }
  field "weight" { type = float }
  field "other"  { type = "int" }
}
`), "schema.hcl", &diags)
	require.NoError(t, err)
	require.Len(t, s.Structs, 2)

	ext := s.Structs[0]
	require.Equal(t, "extension", ext.Name)
	require.Equal(t, &schema.Pos{Filename: "schema.hcl", Line: 2}, ext.Pos)
	require.Len(t, ext.Fields, 3)
	require.Equal(t, &schema.IntegerType{T: "uint8_t", Size: 1}, ext.Fields[0].Type)
	require.Equal(t, &schema.IntegerType{T: "uint16_t", Size: 2}, ext.Fields[1].Type)
	require.Equal(t, &schema.BytesType{}, ext.Fields[2].Type)

	hello := s.Structs[1]
	require.Len(t, hello.Fields, 3)
	require.Equal(t, &schema.FixedBytesType{Size: 4}, hello.Fields[0].Type)
	require.Equal(t, &schema.IntegerType{T: "uint64_t", Size: 8}, hello.Fields[1].Type)
	require.Equal(t, &schema.IntegerType{T: "uint32_t", Size: 4}, hello.Fields[2].Type)

	require.Len(t, diags, 2)
	var terr *schemaparse.UnknownFieldTypeError
	require.True(t, errors.As(diags[0], &terr))
	require.Equal(t, "weight", terr.Field)
	require.Equal(t, "float", terr.Type)
	require.Equal(t, 12, terr.Pos.Line)
	require.True(t, errors.As(diags[1], &terr))
	require.Equal(t, "other", terr.Field)
	require.Equal(t, "int", terr.Type)
}

func TestParse_Errors(t *testing.T) {
	for _, src := range []string{
		`struct "a" {`,
		`table "a" {}`,
		`struct "a" "b" {}`,
		`name = "x"`,
		`struct "a" { size = 1 }`,
		`struct "a" { column "b" { type = uint8 } }`,
		`struct "a" { field "b" { kind = uint8 } }`,
		`struct "a" { field "b" { type = uint8
  null = true } }`,
	} {
		_, err := schemahcl.Parse([]byte(src), "schema.hcl", nil)
		require.Error(t, err, src)
		var diags hcl.Diagnostics
		require.True(t, errors.As(err, &diags), src)
	}
}

func TestCharFunc(t *testing.T) {
	var diags schema.Diagnostics
	s, err := schemahcl.Parse([]byte(`struct "a" {
  field "b" { type = char(0) }
  field "c" { type = char(16) }
}`), "schema.hcl", &diags)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	require.Len(t, s.Structs[0].Fields, 1)
	require.Equal(t, &schema.FixedBytesType{Size: 16}, s.Structs[0].Fields[0].Type)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`struct "reply" {
  field "request_id" { type = uint16 }
}`), 0644))
	s, err := schemahcl.ParseFile(path, nil)
	require.NoError(t, err)
	require.Equal(t, "reply", s.Structs[0].Name)
	require.Equal(t, path, s.Structs[0].Fields[0].Pos.Filename)
}
