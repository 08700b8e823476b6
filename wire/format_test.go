// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package wire_test

import (
	"errors"
	"testing"

	"ariga.io/structwire/wire"

	"github.com/stretchr/testify/require"
)

func TestFixedSize(t *testing.T) {
	for format, want := range map[string]int{
		"":      0,
		"cs":    3,
		"sccss": 8,
		"ls":    10,
		"csB":   3,
		"c12Bi": 17,
		"sBccl": 12,
	} {
		n, err := wire.FixedSize(format)
		require.NoError(t, err, format)
		require.Equal(t, want, n, format)
	}
	for _, format := range []string{"x", "B", "4", "4c", "0B", "c4BB", "sBB"} {
		_, err := wire.FixedSize(format)
		var ferr *wire.FormatError
		require.True(t, errors.As(err, &ferr), format)
	}
}

func TestPack_ByteOrder(t *testing.T) {
	buf := make([]byte, 15)
	n, err := wire.Pack(buf, "csil", uint8(0xff), uint16(0x0102), uint32(0x01020304), uint64(0x0102030405060708))
	require.NoError(t, err)
	require.Equal(t, 15, n)
	require.Equal(t, []byte{
		0xff,
		0x01, 0x02,
		0x01, 0x02, 0x03, 0x04,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}, buf)
}

func TestPackUnpack(t *testing.T) {
	var (
		buf     = make([]byte, 64)
		payload = []byte("hello")
	)
	n, err := wire.Pack(buf, "csB4Bi", uint8(7), uint16(len(payload)), payload, "ab", uint32(42))
	require.NoError(t, err)
	require.Equal(t, 1+2+5+4+4, n)
	size, err := wire.Size("csB4Bi", uint8(7), uint16(len(payload)), payload, "ab", uint32(42))
	require.NoError(t, err)
	require.Equal(t, n, size)

	var (
		a   uint8
		l   uint16
		p   []byte
		tag string
		i   uint32
	)
	m, err := wire.Unpack(buf[:n], "csB4Bi", &a, &l, &p, &tag, &i)
	require.NoError(t, err)
	require.Equal(t, n, m)
	require.Equal(t, uint8(7), a)
	require.Equal(t, uint16(5), l)
	require.Equal(t, payload, p)
	require.Equal(t, "ab", tag)
	require.Equal(t, uint32(42), i)

	// Decoded bytes do not alias the input buffer.
	buf[3] = 'X'
	require.Equal(t, payload, p)
}

func TestPack_Deterministic(t *testing.T) {
	b1, b2 := make([]byte, 16), make([]byte, 16)
	for i := range b2 {
		b2[i] = 0xaa
	}
	n1, err := wire.Pack(b1, "s8B", uint16(1), []byte("x"))
	require.NoError(t, err)
	n2, err := wire.Pack(b2, "s8B", uint16(1), []byte("x"))
	require.NoError(t, err)
	require.Equal(t, b1[:n1], b2[:n2])
}

func TestPack_Errors(t *testing.T) {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xee
	}
	untouched := append([]byte(nil), buf...)

	_, err := wire.Pack(buf, "4B", []byte("12345"))
	var oerr *wire.FieldOverflowError
	require.True(t, errors.As(err, &oerr))
	require.Equal(t, 4, oerr.Max)
	require.Equal(t, 5, oerr.Len)
	require.Equal(t, untouched, buf)

	_, err = wire.Pack(buf, "sB", uint16(3), []byte("ab"))
	var serr *wire.SizeMismatchError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 3, serr.Want)
	require.Equal(t, 2, serr.Got)
	require.Equal(t, untouched, buf)

	_, err = wire.Pack(buf, "ll", uint64(1), uint64(2))
	var berr *wire.BufferTooSmallError
	require.True(t, errors.As(err, &berr))
	require.Equal(t, 16, berr.Need)
	require.Equal(t, 8, berr.Have)
	require.Equal(t, untouched, buf)

	var ferr *wire.FormatError
	_, err = wire.Pack(buf, "cs", uint8(1))
	require.True(t, errors.As(err, &ferr))
	_, err = wire.Pack(buf, "c", uint16(300))
	require.True(t, errors.As(err, &ferr))
	_, err = wire.Pack(buf, "c", -1)
	require.True(t, errors.As(err, &ferr))
	_, err = wire.Pack(buf, "c", "a")
	require.True(t, errors.As(err, &ferr))
	_, err = wire.Pack(buf, "4B", 1)
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, untouched, buf)
}

func TestUnpack_DecodeOrder(t *testing.T) {
	var (
		n       uint16
		payload []byte
	)
	// n = 3 followed by exactly 3 bytes.
	size, err := wire.Unpack([]byte{0x00, 0x03, 'a', 'b', 'c'}, "sB", &n, &payload)
	require.NoError(t, err)
	require.Equal(t, 5, size)
	require.Equal(t, []byte("abc"), payload)

	// Only 2 payload bytes are available.
	_, err = wire.Unpack([]byte{0x00, 0x03, 'a', 'b'}, "sB", &n, &payload)
	var serr *wire.SizeMismatchError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 5, serr.Want)
	require.Equal(t, 4, serr.Got)

	// Fixed tail after the variable field.
	_, err = wire.Unpack([]byte{0x00, 0x01, 'a', 0x00}, "sBs", &n, &payload, new(uint16))
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 5, serr.Want)

	// Huge length prefix.
	_, err = wire.Unpack([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "lB", new(uint64), &payload)
	require.True(t, errors.As(err, &serr))
}

func TestUnpack_Errors(t *testing.T) {
	var ferr *wire.FormatError
	_, err := wire.Unpack([]byte{1, 2}, "s", new(uint8))
	require.True(t, errors.As(err, &ferr))
	_, err = wire.Unpack([]byte{1}, "c", new(int))
	require.True(t, errors.As(err, &ferr))
	_, err = wire.Unpack([]byte{1}, "cc", new(uint8))
	require.True(t, errors.As(err, &ferr))
	_, err = wire.Unpack([]byte{0, 1, 2}, "sB", new(uint16), new(int))
	require.True(t, errors.As(err, &ferr))

	var serr *wire.SizeMismatchError
	_, err = wire.Unpack([]byte{1, 2, 3}, "i", new(uint32))
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 4, serr.Want)
	require.Equal(t, 3, serr.Got)
}

func TestBlock(t *testing.T) {
	dst := []byte{9, 9, 9, 9}
	wire.PutBlock(dst, []byte("ab"))
	require.Equal(t, []byte{'a', 'b', 0, 0}, dst)
	require.Equal(t, []byte("ab"), wire.Block(dst))
	require.Nil(t, wire.Block([]byte{0, 0}))
	require.Nil(t, wire.Clone(nil))
	require.Nil(t, wire.Clone([]byte{}))
}

func TestErrors(t *testing.T) {
	require.EqualError(t, &wire.SizeMismatchError{Struct: "s", Field: "payload", Want: 5, Got: 4}, "wire: size mismatch in s.payload: want 5 bytes, got 4")
	require.EqualError(t, &wire.SizeMismatchError{Want: 5, Got: 4}, "wire: size mismatch: want 5 bytes, got 4")
	require.EqualError(t, &wire.BufferTooSmallError{Struct: "s", Need: 5, Have: 4}, "wire: buffer too small in s: need 5 bytes, have 4")
	require.EqualError(t, &wire.FieldOverflowError{Field: "argument 0", Max: 4, Len: 5}, "wire: field overflow in argument 0: 5 bytes exceed the cap of 4")
	require.EqualError(t, &wire.FormatError{Format: "x", Pos: 0, Msg: "bad"}, `wire: format "x" at 0: bad`)
}
