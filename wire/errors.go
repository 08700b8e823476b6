// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package wire

import (
	"errors"
	"fmt"
)

type (
	// SizeMismatchError is returned when the number of bytes encoded or
	// decoded disagrees with the wire size computed for the record. For
	// example, a buffer that ends before the variable-length field, or a
	// variable-length field whose length differs from its length field.
	SizeMismatchError struct {
		Struct string // Optional.
		Field  string // Optional.
		Want   int
		Got    int
	}

	// BufferTooSmallError is returned when the destination buffer cannot
	// hold the encoded record. Nothing is written to the buffer.
	BufferTooSmallError struct {
		Struct string // Optional.
		Need   int
		Have   int
	}

	// FieldOverflowError is returned when the content of a capped byte
	// field (char[N]) exceeds its cap. Nothing is written to the buffer.
	FieldOverflowError struct {
		Struct string // Optional.
		Field  string // Field name, or the argument position for the format engine.
		Max    int
		Len    int
	}

	// TransportError wraps a failed or short transfer. N holds the number
	// of bytes transferred before the failure.
	TransportError struct {
		Op  string // "send" or "recv".
		N   int
		Err error
	}

	// FormatError is returned for invalid format signatures or arguments
	// that do not match them.
	FormatError struct {
		Format string
		Pos    int
		Msg    string
	}
)

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("wire: size mismatch%s: want %d bytes, got %d", where(e.Struct, e.Field), e.Want, e.Got)
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("wire: buffer too small%s: need %d bytes, have %d", where(e.Struct, ""), e.Need, e.Have)
}

func (e *FieldOverflowError) Error() string {
	return fmt.Sprintf("wire: field overflow%s: %d bytes exceed the cap of %d", where(e.Struct, e.Field), e.Len, e.Max)
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("wire: %s failed after %d bytes: %v", e.Op, e.N, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports if the underlying error is a timeout, for example, an
// expired deadline of a net.Conn.
func (e *TransportError) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("wire: format %q at %d: %s", e.Format, e.Pos, e.Msg)
}

func where(st, field string) string {
	switch {
	case st != "" && field != "":
		return " in " + st + "." + field
	case st != "":
		return " in " + st
	case field != "":
		return " in " + field
	default:
		return ""
	}
}
