package ladspa

// PluginDescriptor describes one pluggable unit: its identity, metadata,
// ports and factory. A descriptor is built once, never mutated
// afterwards, and shared read-only by every instance created from it and
// by the marshaled copy the host sees.
type PluginDescriptor struct {
	// UniqueID identifies the plugin across all LADSPA plugins. During
	// development pick one under 1000; release plugins need an assigned
	// ID (see http://www.ladspa.org/ladspa_sdk/unique_ids.html).
	UniqueID uint64

	// Label is a unique, case-sensitive identifier for the plugin within
	// its library. It should not contain spaces.
	Label string

	// Properties describes restrictions and capabilities of the plugin.
	Properties Properties

	// Name is the human-readable plugin name.
	Name string

	// Maker names the author. May be empty.
	Maker string

	// Copyright states the plugin's copyright, or "None".
	Copyright string

	// Ports lists the plugin's inputs and outputs. The order is
	// significant: it is the port index the host and the plugin's Run
	// method both see.
	Ports []Port

	// New creates a fresh plugin instance for the given sample rate.
	// Instances should come back ready to be activated; state reset
	// belongs in Activate, not here.
	New func(desc *PluginDescriptor, sampleRate uint64) Plugin
}

// Plugin is one live instance of a plugin, created by a descriptor's
// factory. The host drives it strictly sequentially: Activate before the
// first Run, Run any number of times, Deactivate when processing stops.
// Activate/Deactivate may be called again to restart processing.
type Plugin interface {
	// Activate resets all state that depends on the instance's history.
	// Called before Run is called for the first time and again after any
	// Deactivate/Activate cycle.
	Activate()

	// Run processes sampleCount samples. ports holds one connection per
	// declared port, in declaration order.
	Run(sampleCount int, ports []*PortConnection)

	// Deactivate indicates the instance is no longer live.
	Deactivate()
}

// NopActivation is an embeddable base for plugins that keep no state
// across runs and need neither Activate nor Deactivate.
type NopActivation struct{}

// Activate does nothing.
func (NopActivation) Activate() {}

// Deactivate does nothing.
func (NopActivation) Deactivate() {}
