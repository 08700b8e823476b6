// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package schema

type (
	// A Reporter receives non-fatal diagnostics produced while a schema
	// is parsed or compiled. Reporting does not stop the process.
	Reporter interface {
		Report(error)
	}

	// ReporterFunc allows using ordinary functions as Reporter.
	ReporterFunc func(error)

	// Diagnostics is a Reporter that collects the reported errors.
	Diagnostics []error
)

// Report calls f(err).
func (f ReporterFunc) Report(err error) { f(err) }

// Report implements Reporter.
func (d *Diagnostics) Report(err error) { *d = append(*d, err) }

// NopReporter discards all diagnostics.
var NopReporter Reporter = ReporterFunc(func(error) {})
