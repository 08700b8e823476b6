// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package wire

import "bytes"

// PutBlock copies src into the fixed-size block dst and zeroes the rest of
// it. The caller ensures src fits in dst.
func PutBlock(dst, src []byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// Block returns a copy of the fixed-size block src without its trailing
// zero padding.
func Block(src []byte) []byte {
	return Clone(bytes.TrimRight(src, "\x00"))
}

// Clone returns a copy of b. Empty blocks are returned as nil.
func Clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
