// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package protocol_test

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"

	"ariga.io/structwire/internal/protocol"
	"ariga.io/structwire/wire"

	"github.com/stretchr/testify/require"
)

// record is implemented by all generated record types.
type record interface {
	Size() int
	Pack([]byte) (int, error)
	Unpack([]byte) (int, error)
	Send(io.Writer) (int, error)
	Recv(io.Reader) (int, error)
}

func records() []struct {
	in, out record
} {
	return []struct {
		in, out record
	}{
		{&protocol.ParamsOfflen{Offset: 1 << 40, Length: 512}, &protocol.ParamsOfflen{}},
		{&protocol.Command{RequestID: 7, Extension: 1, Command: 3, Handle: 0xbeef, Length: 10}, &protocol.Command{}},
		{&protocol.Reply{RequestID: 7, Extension: 1, Result: 0xff, Length: 0}, &protocol.Reply{}},
		{protocol.NewHello(16, protocol.NewExtension(1, "posix")), &protocol.Hello{}},
		{protocol.NewExtension(1, "posix"), &protocol.Extension{}},
		{&protocol.AuthOutcome{Result: 1}, &protocol.AuthOutcome{}},
		{&protocol.AuthOutcome{Result: 0, AdataLen: 3, Adata: []byte{0, 1, 2}}, &protocol.AuthOutcome{}},
		{protocol.NewDirEntry("README.md", protocol.EntryFile, protocol.PermRead|protocol.PermWrite, 4096), &protocol.DirEntry{}},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tt := range records() {
		buf := make([]byte, tt.in.Size()+8)
		n, err := tt.in.Pack(buf)
		require.NoError(t, err)
		require.Equal(t, tt.in.Size(), n)
		m, err := tt.out.Unpack(buf[:n])
		require.NoError(t, err)
		require.Equal(t, n, m)
		require.Equal(t, tt.in, tt.out)

		// Trailing bytes are not consumed.
		m, err = tt.out.Unpack(buf)
		require.NoError(t, err)
		require.Equal(t, n, m)
	}
}

func TestPack_Deterministic(t *testing.T) {
	for _, tt := range records() {
		b1, b2 := make([]byte, tt.in.Size()), make([]byte, tt.in.Size())
		for i := range b2 {
			b2[i] = 0xaa
		}
		_, err := tt.in.Pack(b1)
		require.NoError(t, err)
		_, err = tt.in.Pack(b2)
		require.NoError(t, err)
		require.Equal(t, b1, b2)
	}
}

func TestPack_ByteOrder(t *testing.T) {
	buf := make([]byte, protocol.CommandFixedSize)
	n, err := protocol.PackCommandFields(buf, 0x0102, 0x03, 0x04, 0x0506, 0x0708)
	require.NoError(t, err)
	require.Equal(t, protocol.CommandFixedSize, n)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)

	p := &protocol.ParamsOfflen{Offset: 0x0102030405060708, Length: 0x090a}
	buf = make([]byte, p.Size())
	_, err = p.Pack(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, buf)
}

func TestPack_DirEntry(t *testing.T) {
	e := protocol.NewDirEntry("ab", protocol.EntryDir, protocol.PermRead, 0x0102)
	buf := make([]byte, e.Size())
	_, err := e.Pack(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x00, 0x02, // name_len
		'a', 'b', // name
		0x02,                                           // type
		0x01,                                           // perm
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, // size
	}, buf)
	require.Equal(t, protocol.DirEntryFixedSize+2, e.Size())
}

func TestPack_Hello(t *testing.T) {
	h := protocol.NewHello(4)
	buf := make([]byte, protocol.HelloFixedSize)
	_, err := h.Pack(buf)
	require.NoError(t, err)
	require.Equal(t, []byte("FILESHR\x00"), buf[:8])

	var got protocol.Hello
	_, err = got.Unpack(buf)
	require.NoError(t, err)
	require.Equal(t, []byte(protocol.Magic), got.Magic)

	// Empty blocks decode as nil.
	h.Magic = nil
	_, err = h.Pack(buf)
	require.NoError(t, err)
	_, err = got.Unpack(buf)
	require.NoError(t, err)
	require.Nil(t, got.Magic)

	// Trailing zeros are indistinguishable from the padding.
	h.Magic = []byte("a\x00")
	_, err = h.Pack(buf)
	require.NoError(t, err)
	require.Equal(t, []byte("a\x00\x00\x00\x00\x00\x00\x00"), buf[:8])
	_, err = got.Unpack(buf)
	require.NoError(t, err)
	require.Equal(t, []byte("a"), got.Magic)
}

func TestPack_Overflow(t *testing.T) {
	h := protocol.NewHello(4)
	h.Magic = []byte("FILESHARE")
	buf := bytes.Repeat([]byte{0xee}, protocol.HelloFixedSize)
	_, err := h.Pack(buf)
	var oerr *wire.FieldOverflowError
	require.True(t, errors.As(err, &oerr))
	require.Equal(t, "hello", oerr.Struct)
	require.Equal(t, "magic", oerr.Field)
	require.Equal(t, 8, oerr.Max)
	require.Equal(t, 9, oerr.Len)
	require.Equal(t, bytes.Repeat([]byte{0xee}, protocol.HelloFixedSize), buf)
}

func TestPack_Errors(t *testing.T) {
	ext := &protocol.Extension{Code: 1, NameLen: 3, Name: []byte("ab")}
	buf := make([]byte, 16)
	_, err := ext.Pack(buf)
	var serr *wire.SizeMismatchError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, "name", serr.Field)
	require.Equal(t, 3, serr.Want)
	require.Equal(t, 2, serr.Got)
	require.Equal(t, make([]byte, 16), buf)

	_, err = protocol.NewExtension(1, "posix").Pack(buf[:7])
	var berr *wire.BufferTooSmallError
	require.True(t, errors.As(err, &berr))
	require.Equal(t, 8, berr.Need)
	require.Equal(t, 7, berr.Have)
	require.Equal(t, make([]byte, 16), buf)
}

func TestUnpack_DecodeOrder(t *testing.T) {
	var ext protocol.Extension
	// name_len = 3 followed by exactly 3 bytes.
	n, err := ext.Unpack([]byte{0x01, 0x00, 0x03, 'a', 'b', 'c'})
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte("abc"), ext.Name)

	// Only 2 bytes follow the companion field.
	prev := ext
	_, err = ext.Unpack([]byte{0x02, 0x00, 0x03, 'x', 'y'})
	var serr *wire.SizeMismatchError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, "extension", serr.Struct)
	require.Equal(t, 6, serr.Want)
	require.Equal(t, 5, serr.Got)
	require.Equal(t, prev, ext)

	// Fixed tail after the variable field.
	var e protocol.DirEntry
	_, err = e.Unpack([]byte{0x00, 0x01, 'a', 0x01, 0x01, 0, 0, 0, 0, 0, 0, 0})
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 13, serr.Want)
	require.Equal(t, 12, serr.Got)

	_, err = new(protocol.Reply).Unpack([]byte{1, 2, 3})
	require.True(t, errors.As(err, &serr))
	require.Equal(t, protocol.ReplyFixedSize, serr.Want)
}

func TestUnpack_NoAlias(t *testing.T) {
	buf := []byte{0x00, 0x02, 'a', 'b', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	var e protocol.DirEntry
	_, err := e.Unpack(buf)
	require.NoError(t, err)
	buf[2] = 'x'
	require.Equal(t, []byte("ab"), e.Name)
}

func TestSendRecv(t *testing.T) {
	for _, tt := range records() {
		c1, c2 := net.Pipe()
		done := make(chan error, 1)
		go func() {
			defer c1.Close()
			_, err := tt.in.Send(c1)
			done <- err
		}()
		n, err := tt.out.Recv(c2)
		require.NoError(t, err)
		require.NoError(t, <-done)
		require.Equal(t, tt.in.Size(), n)
		require.Equal(t, tt.in, tt.out)

		// The peer closed the stream between records.
		_, err = tt.out.Recv(c2)
		require.Equal(t, io.EOF, err)
		c2.Close()
	}
}

func TestRecv_Sequence(t *testing.T) {
	var b bytes.Buffer
	entries := []*protocol.DirEntry{
		protocol.NewDirEntry(".", protocol.EntryDir, protocol.PermRead, 0),
		protocol.NewDirEntry("data.bin", protocol.EntryFile, protocol.PermRead|protocol.PermWrite, 1<<33),
		protocol.NewDirEntry("", protocol.EntryBad, 0, 0),
	}
	for _, e := range entries {
		_, err := e.Send(&b)
		require.NoError(t, err)
	}
	for _, e := range entries {
		var got protocol.DirEntry
		_, err := got.Recv(&b)
		require.NoError(t, err)
		if e.NameLen == 0 {
			e.Name = nil
		}
		require.Equal(t, e, &got)
	}
	_, err := new(protocol.DirEntry).Recv(&b)
	require.Equal(t, io.EOF, err)
}

func TestRecv_ShortRead(t *testing.T) {
	e := protocol.NewDirEntry("README.md", protocol.EntryFile, protocol.PermRead, 10)
	buf := make([]byte, e.Size())
	_, err := e.Pack(buf)
	require.NoError(t, err)
	for _, n := range []int{1, 2, 5, len(buf) - 1} {
		got := protocol.DirEntry{Type: 9}
		m, err := got.Recv(bytes.NewReader(buf[:n]))
		var terr *wire.TransportError
		require.True(t, errors.As(err, &terr), n)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Equal(t, n, m)
		// Nothing is decoded from a partial record.
		require.Equal(t, protocol.DirEntry{Type: 9}, got)
	}

	var r protocol.Reply
	_, err = r.Recv(bytes.NewReader([]byte{0, 1, 2}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSend_Error(t *testing.T) {
	ext := &protocol.Extension{NameLen: 10, Name: []byte("posix")}
	var b bytes.Buffer
	_, err := ext.Send(&b)
	var serr *wire.SizeMismatchError
	require.True(t, errors.As(err, &serr))
	require.Zero(t, b.Len())

	c1, c2 := net.Pipe()
	require.NoError(t, c2.Close())
	_, err = protocol.NewExtension(1, "posix").Send(c1)
	var terr *wire.TransportError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "send", terr.Op)
}
