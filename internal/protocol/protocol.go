// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package protocol holds the record headers of the file sharing protocol.
// The record types and their codecs are generated from structs.h.
package protocol

//go:generate go run ariga.io/structwire/cmd/structwire gen --src structs.h --out . --package protocol --file structs --backend inline --stream

// Directory entry types.
const (
	EntryOther uint8 = 0
	EntryFile  uint8 = 1
	EntryDir   uint8 = 2
	EntryBad   uint8 = 0xff
)

// Directory entry permission bits.
const (
	PermRead  uint8 = 0x01
	PermWrite uint8 = 0x02
)

// Magic is the protocol name carried by Hello records.
const Magic = "FILESHR"

// Version is the protocol version carried by Hello records.
const Version = 1

// MaxOpendirs is the number of directories a client may keep open.
const MaxOpendirs = 5

// NewHello returns the Hello record announcing the given limits.
func NewHello(maxHandles uint16, exts ...*Extension) *Hello {
	return &Hello{
		Magic:         []byte(Magic),
		Version:       Version,
		MaxHandles:    maxHandles,
		MaxOpendirs:   MaxOpendirs,
		NumExtensions: uint16(len(exts)),
	}
}

// NewExtension returns the Extension record of the named extension.
func NewExtension(code uint8, name string) *Extension {
	return &Extension{Code: code, NameLen: uint16(len(name)), Name: []byte(name)}
}

// NewDirEntry returns the DirEntry record of a directory listing entry.
func NewDirEntry(name string, typ, perm uint8, size uint64) *DirEntry {
	return &DirEntry{NameLen: uint16(len(name)), Name: []byte(name), Type: typ, Perm: perm, Size_: size}
}
