// Package plugin provides the LADSPA bridge. It marshals typed plugin
// descriptors into the flat record the host ABI requires, owns the
// process-wide descriptor registry, and dispatches the host's lifecycle
// calls (instantiate, connect_port, activate, run, deactivate, cleanup)
// onto ladspa.Plugin instances with fault containment at every crossing
// into user code.
//
// A plugin library registers a descriptor lookup in an init function of
// its main package and builds with -buildmode=c-shared:
//
//	func init() {
//		plugin.Register(func(index uint64) *ladspa.PluginDescriptor {
//			if index == 0 {
//				return myDescriptor()
//			}
//			return nil
//		})
//	}
//
//	func main() {} // required for c-shared build mode
//
// The main package must also import the cbridge package so the
// ladspa_descriptor entry point is linked:
//
//	import _ "github.com/justyntemme/ladspago/pkg/plugin/cbridge"
package plugin

import "github.com/justyntemme/ladspago/pkg/ladspa"

// DescriptorFunc looks up the typed descriptor for a plugin index. Hosts
// probe indices sequentially from 0; returning nil means no plugin exists
// at that index. The function may be called again for an index it
// previously declined.
type DescriptorFunc func(index uint64) *ladspa.PluginDescriptor

// globalLookup is the library's registered descriptor lookup.
var globalLookup DescriptorFunc

// Register sets the descriptor lookup for this plugin library. It is
// meant to be called once, from an init function; a later call replaces
// the earlier lookup.
func Register(lookup DescriptorFunc) {
	globalLookup = lookup
}
