// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package wire is the runtime of the generated codecs. It provides a generic
// codec engine driven by format signatures, the typed errors returned by the
// generated code and the transport primitives used by the stream variants.
//
// A format signature is a sequence of codes, one per field:
//
//	c    uint8
//	s    uint16, network byte order
//	i    uint32, network byte order
//	l    uint64, network byte order
//	NB   byte block of exactly N bytes, zero padded (N is decimal)
//	B    byte block whose length is the value of the preceding integer
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// token is a parsed format code.
type token struct {
	code  byte // c, s, i, l or B.
	width int  // Fixed width, zero for variable-length blocks.
	pos   int  // Position in the format signature.
}

func (t token) variable() bool { return t.code == 'B' && t.width == 0 }

func parseFormat(format string) ([]token, error) {
	var toks []token
	for i := 0; i < len(format); i++ {
		switch c := format[i]; {
		case c == 'c':
			toks = append(toks, token{code: c, width: 1, pos: i})
		case c == 's':
			toks = append(toks, token{code: c, width: 2, pos: i})
		case c == 'i':
			toks = append(toks, token{code: c, width: 4, pos: i})
		case c == 'l':
			toks = append(toks, token{code: c, width: 8, pos: i})
		case c >= '0' && c <= '9':
			j := i
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				j++
			}
			if j == len(format) || format[j] != 'B' {
				return nil, &FormatError{Format: format, Pos: i, Msg: "size must be followed by 'B'"}
			}
			n, err := strconv.Atoi(format[i:j])
			if err != nil || n <= 0 {
				return nil, &FormatError{Format: format, Pos: i, Msg: "invalid block size"}
			}
			toks = append(toks, token{code: 'B', width: n, pos: i})
			i = j
		case c == 'B':
			if len(toks) == 0 || toks[len(toks)-1].code == 'B' {
				return nil, &FormatError{Format: format, Pos: i, Msg: "'B' must follow an integer length code"}
			}
			toks = append(toks, token{code: c, pos: i})
		default:
			return nil, &FormatError{Format: format, Pos: i, Msg: fmt.Sprintf("unknown code %q", c)}
		}
	}
	return toks, nil
}

// FixedSize returns the sum of the fixed widths of the format signature.
// Variable-length blocks contribute nothing.
func FixedSize(format string) (int, error) {
	toks, err := parseFormat(format)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, t := range toks {
		n += t.width
	}
	return n, nil
}

// Size returns the number of bytes Pack writes for the given values.
func Size(format string, values ...any) (int, error) {
	toks, err := parseFormat(format)
	if err != nil {
		return 0, err
	}
	return size(format, toks, values)
}

// size validates the values against the tokens and returns the wire size.
func size(format string, toks []token, values []any) (int, error) {
	if len(values) != len(toks) {
		return 0, &FormatError{Format: format, Msg: fmt.Sprintf("expected %d values, got %d", len(toks), len(values))}
	}
	var n int
	var last uint64
	for i, t := range toks {
		switch t.code {
		case 'B':
			b, ok := bytesOf(values[i])
			if !ok {
				return 0, &FormatError{Format: format, Pos: t.pos, Msg: fmt.Sprintf("expected []byte or string, got %T", values[i])}
			}
			if t.width > 0 {
				if len(b) > t.width {
					return 0, &FieldOverflowError{Field: arg(i), Max: t.width, Len: len(b)}
				}
				n += t.width
				continue
			}
			if uint64(len(b)) != last {
				return 0, &SizeMismatchError{Field: arg(i), Want: int(last), Got: len(b)}
			}
			n += len(b)
		default:
			v, ok := uintOf(values[i])
			if !ok {
				return 0, &FormatError{Format: format, Pos: t.pos, Msg: fmt.Sprintf("expected an unsigned integer, got %T", values[i])}
			}
			if t.width < 8 && v>>(8*t.width) != 0 {
				return 0, &FormatError{Format: format, Pos: t.pos, Msg: fmt.Sprintf("value %d overflows %d bytes", v, t.width)}
			}
			last = v
			n += t.width
		}
	}
	return n, nil
}

// Pack encodes the values into buf according to the format signature and
// returns the number of bytes written. The values are validated before
// anything is written: on error, buf is left untouched.
func Pack(buf []byte, format string, values ...any) (int, error) {
	toks, err := parseFormat(format)
	if err != nil {
		return 0, err
	}
	n, err := size(format, toks, values)
	if err != nil {
		return 0, err
	}
	if len(buf) < n {
		return 0, &BufferTooSmallError{Need: n, Have: len(buf)}
	}
	off := 0
	for i, t := range toks {
		if t.code == 'B' {
			b, _ := bytesOf(values[i])
			if t.width > 0 {
				PutBlock(buf[off:off+t.width], b)
				off += t.width
			} else {
				off += copy(buf[off:], b)
			}
			continue
		}
		v, _ := uintOf(values[i])
		putUint(buf[off:], t.width, v)
		off += t.width
	}
	return off, nil
}

// Unpack decodes buf according to the format signature into the given
// references and returns the number of bytes consumed. Integers are decoded
// into *uint8, *uint16, *uint32 or *uint64 matching their width, and byte
// blocks into *[]byte or *string. Decoded bytes never alias buf.
//
// If buf ends before the record does, a *SizeMismatchError is returned and
// the references may be partially populated.
func Unpack(buf []byte, format string, refs ...any) (int, error) {
	toks, err := parseFormat(format)
	if err != nil {
		return 0, err
	}
	if len(refs) != len(toks) {
		return 0, &FormatError{Format: format, Msg: fmt.Sprintf("expected %d references, got %d", len(toks), len(refs))}
	}
	var (
		off  int
		last uint64
	)
	for i, t := range toks {
		w := uint64(t.width)
		if t.variable() {
			w = last
		}
		if uint64(len(buf)-off) < w {
			return off, &SizeMismatchError{Field: arg(i), Want: want(off, w, minRemain(toks[i+1:])), Got: len(buf)}
		}
		src := buf[off : off+int(w)]
		switch t.code {
		case 'B':
			b := Clone(src)
			if !t.variable() {
				b = Block(src)
			}
			if !setBytes(refs[i], b) {
				return off, &FormatError{Format: format, Pos: t.pos, Msg: fmt.Sprintf("expected *[]byte or *string, got %T", refs[i])}
			}
		default:
			last = getUint(src, t.width)
			if !setUint(refs[i], t.width, last) {
				return off, &FormatError{Format: format, Pos: t.pos, Msg: fmt.Sprintf("unexpected reference %T for %d-byte integer", refs[i], t.width)}
			}
		}
		off += int(w)
	}
	return off, nil
}

// minRemain returns the fixed widths of the remaining tokens.
func minRemain(toks []token) int {
	n := 0
	for _, t := range toks {
		n += t.width
	}
	return n
}

// want returns the minimal record size, saturated at math.MaxInt.
func want(off int, need uint64, rest int) int {
	if need > uint64(math.MaxInt-off-rest) {
		return math.MaxInt
	}
	return off + int(need) + rest
}

func arg(i int) string { return "argument " + strconv.Itoa(i) }

func putUint(b []byte, width int, v uint64) {
	switch width {
	case 1:
		b[0] = uint8(v)
	case 2:
		binary.BigEndian.PutUint16(b, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(b, uint32(v))
	case 8:
		binary.BigEndian.PutUint64(b, v)
	}
}

func getUint(b []byte, width int) uint64 {
	switch width {
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

func uintOf(v any) (uint64, bool) {
	switch v := v.(type) {
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		return uint64(v), v >= 0
	default:
		return 0, false
	}
}

func bytesOf(v any) ([]byte, bool) {
	switch v := v.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}

func setUint(ref any, width int, v uint64) bool {
	switch ref := ref.(type) {
	case *uint8:
		if width != 1 {
			return false
		}
		*ref = uint8(v)
	case *uint16:
		if width != 2 {
			return false
		}
		*ref = uint16(v)
	case *uint32:
		if width != 4 {
			return false
		}
		*ref = uint32(v)
	case *uint64:
		if width != 8 {
			return false
		}
		*ref = v
	default:
		return false
	}
	return true
}

func setBytes(ref any, b []byte) bool {
	switch ref := ref.(type) {
	case *[]byte:
		*ref = b
	case *string:
		*ref = string(b)
	default:
		return false
	}
	return true
}
