// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package wire

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// MaxRecordSize is the largest record ReceiveRecord accepts. Larger
// length prefixes are rejected before allocating the record buffer.
const MaxRecordSize = math.MaxInt32

// Uint decodes the unsigned integer stored in network byte order in b.
// The length of b must be 1, 2, 4 or 8.
func Uint(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(b))
	case 4:
		return uint64(binary.BigEndian.Uint32(b))
	default:
		return binary.BigEndian.Uint64(b)
	}
}

// RecordSize returns fixed+length, saturated at math.MaxInt.
func RecordSize(fixed int, length uint64) int {
	return want(fixed, length, 0)
}

// ReceiveRecord reads a record holding a variable-length field from r. The
// fixed part of the record is fixed bytes long, and the length of the
// variable field is the integer of width bytes located at offset off,
// immediately before the variable field. The record is read in two steps:
// first up to the variable field, then the variable field and the fixed
// tail. The returned buffer holds exactly the whole record.
//
// If the peer closed the stream before the first byte, the returned error is
// io.EOF. A stream that ends inside the record results in a *TransportError
// wrapping io.ErrUnexpectedEOF.
func ReceiveRecord(r io.Reader, st string, fixed, off, width int) ([]byte, int, error) {
	head := make([]byte, off+width)
	n, err := ReceiveFull(r, head)
	if err != nil {
		return nil, n, err
	}
	size := RecordSize(fixed, Uint(head[off:]))
	if size > MaxRecordSize {
		return nil, n, &BufferTooSmallError{Struct: st, Need: size, Have: MaxRecordSize}
	}
	buf := make([]byte, size)
	copy(buf, head)
	m, err := ReceiveFull(r, buf[n:])
	if err != nil {
		if errors.Is(err, io.EOF) && m == 0 {
			err = &TransportError{Op: "recv", Err: io.ErrUnexpectedEOF}
		}
		var terr *TransportError
		if errors.As(err, &terr) {
			terr.N += n
		}
		return nil, n + m, err
	}
	return buf, n + m, nil
}

// Annotate sets the struct name on the errors returned by Pack and Unpack,
// and replaces argument positions with the given field names.
func Annotate(err error, st string, fields []string) error {
	switch e := err.(type) {
	case *SizeMismatchError:
		e.Struct, e.Field = st, fieldName(e.Field, fields)
	case *BufferTooSmallError:
		e.Struct = st
	case *FieldOverflowError:
		e.Struct, e.Field = st, fieldName(e.Field, fields)
	}
	return err
}

func fieldName(arg string, fields []string) string {
	s, ok := strings.CutPrefix(arg, "argument ")
	if !ok {
		return arg
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i >= len(fields) {
		return arg
	}
	return fields[i]
}
