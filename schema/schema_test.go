// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package schema_test

import (
	"errors"
	"testing"

	"ariga.io/structwire/schema"

	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for _, tt := range []struct {
		token string
		want  schema.Type
	}{
		{"uint8_t", &schema.IntegerType{T: "uint8_t", Size: 1}},
		{"uint16_t", &schema.IntegerType{T: "uint16_t", Size: 2}},
		{" uint32_t ", &schema.IntegerType{T: "uint32_t", Size: 4}},
		{"uint64_t", &schema.IntegerType{T: "uint64_t", Size: 8}},
		{"char *", &schema.BytesType{}},
		{"char*", &schema.BytesType{}},
		{"char[4]", &schema.FixedBytesType{Size: 4}},
		{"char[ 16 ]", &schema.FixedBytesType{Size: 16}},
	} {
		got, err := schema.ParseType(tt.token)
		require.NoError(t, err, tt.token)
		require.Equal(t, tt.want, got, tt.token)
	}
	for _, token := range []string{"float", "int", "char", "char[0]", "char[x]", "uint128_t", ""} {
		_, err := schema.ParseType(token)
		require.Error(t, err, token)
	}
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "uint16_t", schema.NewUint16Field("n").Type.String())
	require.Equal(t, "char[8]", schema.NewFixedBytesField("magic", 8).Type.String())
	require.Equal(t, "char *", schema.NewBytesField("payload").Type.String())
}

func TestSchema_Lookup(t *testing.T) {
	s := &schema.Schema{
		Structs: []*schema.Struct{
			schema.NewStruct("foo", schema.NewUint8Field("a"), schema.NewUint16Field("b")),
		},
	}
	foo, ok := s.Struct("foo")
	require.True(t, ok)
	b, ok := foo.Field("b")
	require.True(t, ok)
	require.True(t, schema.IsInteger(b.Type))
	_, ok = foo.Field("c")
	require.False(t, ok)
	_, ok = s.Struct("bar")
	require.False(t, ok)
}

func TestDiagnostics(t *testing.T) {
	var d schema.Diagnostics
	var r schema.Reporter = &d
	r.Report(errors.New("a"))
	r.Report(errors.New("b"))
	require.Len(t, d, 2)
	schema.NopReporter.Report(errors.New("ignored"))
	require.Equal(t, "structs.h:3", (&schema.Pos{Filename: "structs.h", Line: 3}).String())
	require.Equal(t, "line 7", (&schema.Pos{Line: 7}).String())
}
