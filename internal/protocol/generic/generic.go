// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package generic holds the records of the file sharing protocol compiled
// with the format backend: the codecs delegate to the wire format engine
// instead of encoding each field inline. The wire layout is the same as the
// one of package protocol.
package generic

//go:generate go run ariga.io/structwire/cmd/structwire gen --src ../structs.h --out . --package generic --file structs --backend format --stream
