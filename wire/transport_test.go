// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package wire_test

import (
	"bytes"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"ariga.io/structwire/wire"

	"github.com/stretchr/testify/require"
)

func TestSendFull(t *testing.T) {
	var buf bytes.Buffer
	n, err := wire.SendFull(&buf, []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", buf.String())

	n, err = wire.SendFull(failWriter{n: 2}, []byte("hello"))
	var terr *wire.TransportError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "send", terr.Op)
	require.Equal(t, 2, n)
	require.Equal(t, 2, terr.N)
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestReceiveFull(t *testing.T) {
	b := make([]byte, 5)
	n, err := wire.ReceiveFull(iotest.OneByteReader(strings.NewReader("hello")), b)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(b))

	n, err = wire.ReceiveFull(strings.NewReader(""), b)
	require.Equal(t, io.EOF, err)
	require.Zero(t, n)

	n, err = wire.ReceiveFull(strings.NewReader("he"), b)
	var terr *wire.TransportError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, "recv", terr.Op)
	require.Equal(t, 2, n)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.False(t, terr.Timeout())
}

func TestReceiveFull_Timeout(t *testing.T) {
	c1, c2 := net.Pipe()
	defer c1.Close()
	defer c2.Close()
	require.NoError(t, c1.SetReadDeadline(time.Now().Add(10*time.Millisecond)))
	_, err := wire.ReceiveFull(c1, make([]byte, 4))
	var terr *wire.TransportError
	require.True(t, errors.As(err, &terr))
	require.True(t, terr.Timeout())
}

// failWriter accepts n bytes and fails afterwards.
type failWriter struct{ n int }

func (w failWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		return w.n, io.ErrClosedPipe
	}
	return len(p), nil
}
