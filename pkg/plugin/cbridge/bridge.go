// Package cbridge provides the C entry point required for LADSPA plugins.
// The main package of a plugin library must import it so the
// ladspa_descriptor symbol is linked into the shared library.
//
// Usage:
//
//	import _ "github.com/justyntemme/ladspago/pkg/plugin/cbridge"
//
// The underscore import ensures the C bridge is linked without directly
// using any exports.
package cbridge

// #cgo CFLAGS: -I../../../include
// #include "../../../bridge/bridge.c"
import "C"

import _ "github.com/justyntemme/ladspago/pkg/plugin"
