// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package wire

import (
	"errors"
	"io"
)

// SendFull writes all of b to w. A failed or short write is returned as a
// *TransportError holding the number of bytes written.
func SendFull(w io.Writer, b []byte) (int, error) {
	var n int
	for n < len(b) {
		m, err := w.Write(b[n:])
		n += m
		switch {
		case err != nil:
			return n, &TransportError{Op: "send", N: n, Err: err}
		case m == 0:
			return n, &TransportError{Op: "send", N: n, Err: io.ErrShortWrite}
		}
	}
	return n, nil
}

// ReceiveFull reads exactly len(b) bytes from r. If the peer closed the
// stream before the first byte, the returned error is io.EOF. Any other
// failure, including a short read, is returned as a *TransportError.
func ReceiveFull(r io.Reader, b []byte) (int, error) {
	n, err := io.ReadFull(r, b)
	switch {
	case err == nil:
		return n, nil
	case n == 0 && errors.Is(err, io.EOF):
		return 0, io.EOF
	default:
		return n, &TransportError{Op: "recv", N: n, Err: err}
	}
}
