// Package ladspa provides the typed plugin model for writing LADSPA
// plugins in Go. Plugin authors describe their plugin with a
// PluginDescriptor and implement the Plugin interface; the plugin
// package marshals the description into the flat record LADSPA hosts
// consume and drives instances through the host lifecycle.
package ladspa

// Data is the type used by LADSPA for both audio samples and control
// values.
type Data = float32

// Properties is a bit-set describing restrictions and capabilities of a
// plugin. The zero value means no properties.
type Properties int

// The values mirror the LADSPA_PROPERTY_* constants and must not change.
const (
	// PropRealtime indicates the plugin has a real-time dependency, so
	// its output may not be cached or precomputed.
	PropRealtime Properties = 0x1

	// PropInplaceBroken indicates the plugin will not function correctly
	// when the input and output audio data share a memory location.
	PropInplaceBroken Properties = 0x2

	// PropHardRTCapable indicates the plugin is capable of running in a
	// hard real-time environment (no allocation or blocking in Run).
	PropHardRTCapable Properties = 0x4
)

// PortDescriptor describes the four kinds of port: audio or control,
// input or output. The set is closed by the protocol.
type PortDescriptor int

// Port kind bit patterns, fixed by the ABI.
const (
	portInput   PortDescriptor = 0x1
	portOutput  PortDescriptor = 0x2
	portControl PortDescriptor = 0x4
	portAudio   PortDescriptor = 0x8

	// Invalid is the zero value of PortDescriptor; ports must be declared
	// with exactly one of the four valid kinds.
	Invalid PortDescriptor = 0

	// AudioInput carries one sample per frame from the host.
	AudioInput = portAudio | portInput

	// AudioOutput carries one sample per frame to the host.
	AudioOutput = portAudio | portOutput

	// ControlInput carries a single scalar set by the host.
	ControlInput = portControl | portInput

	// ControlOutput carries a single scalar written by the plugin.
	ControlOutput = portControl | portOutput
)

// IsAudio reports whether the port carries per-sample audio data.
func (d PortDescriptor) IsAudio() bool { return d&portAudio != 0 }

// IsControl reports whether the port carries a single control scalar.
func (d PortDescriptor) IsControl() bool { return d&portControl != 0 }

// IsInput reports whether the host writes the port's data.
func (d PortDescriptor) IsInput() bool { return d&portInput != 0 }

// IsOutput reports whether the plugin writes the port's data.
func (d PortDescriptor) IsOutput() bool { return d&portOutput != 0 }

func (d PortDescriptor) String() string {
	switch d {
	case AudioInput:
		return "AudioInput"
	case AudioOutput:
		return "AudioOutput"
	case ControlInput:
		return "ControlInput"
	case ControlOutput:
		return "ControlOutput"
	default:
		return "Invalid"
	}
}

// ControlHint is a bit-set of hints describing how a port's value should
// be interpreted or presented by the host. Hints are advisory; hosts may
// ignore them. The zero value means no hints.
type ControlHint int

// The values mirror the LADSPA_HINT_* constants. The bounded-below and
// bounded-above bits are not listed here: they are derived from a Port's
// bounds during marshaling and never set by plugin authors.
const (
	// HintToggled marks an on/off port. Values <= 0 are off, > 0 on.
	HintToggled ControlHint = 0x4

	// HintSampleRate marks a port whose values, including its bounds, are
	// multiplied by the sample rate by the host.
	HintSampleRate ControlHint = 0x8

	// HintLogarithmic marks a port whose values are best presented on a
	// logarithmic scale.
	HintLogarithmic ControlHint = 0x10

	// HintInteger marks a port whose values should be treated as integers.
	HintInteger ControlHint = 0x20
)

// DefaultValue selects the default a host should offer for a control
// port. Policies referencing a bound (Minimum, Low, Middle, High,
// Maximum) require that bound to be declared on the port.
type DefaultValue int

// The values mirror the LADSPA_HINT_DEFAULT_* encodings.
const (
	// DefaultNone is the zero value: no default is declared.
	DefaultNone DefaultValue = 0x0

	// DefaultMinimum is the port's lower bound.
	DefaultMinimum DefaultValue = 0x40

	// DefaultLow is 0.75*lower + 0.25*upper (geometrically interpolated
	// for logarithmic ports).
	DefaultLow DefaultValue = 0x80

	// DefaultMiddle is the midpoint of the bounds.
	DefaultMiddle DefaultValue = 0xC0

	// DefaultHigh is 0.25*lower + 0.75*upper.
	DefaultHigh DefaultValue = 0x100

	// DefaultMaximum is the port's upper bound.
	DefaultMaximum DefaultValue = 0x140

	// Default0 is 0, or false for toggled ports.
	Default0 DefaultValue = 0x200

	// Default1 is 1, or true for toggled ports.
	Default1 DefaultValue = 0x240

	// Default100 is 100.
	Default100 DefaultValue = 0x280

	// Default440 is 440 Hz, concert A.
	Default440 DefaultValue = 0x2C0
)
