// SPDX-License-Identifier: MPL-2.0

// Package toolreg is the public registration surface for in-process tool
// entry points. Programs that embed kite register their tools here under a
// string identifier; the in-process runtime resolves identifiers through the
// Registry interface at invocation time.
//
// This package is a leaf dependency: it imports only the standard library.
package toolreg
