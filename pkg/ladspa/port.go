package ladspa

import "fmt"

// Port describes a single named input or output of a plugin.
type Port struct {
	// Name of the port. Hosts typically display control port names next
	// to their generated UI controls.
	Name string

	// Desc selects the port kind: audio or control, input or output.
	Desc PortDescriptor

	// Hint is an optional set of interpretation hints, mostly useful on
	// control inputs. Zero means no hints.
	Hint ControlHint

	// Default is an optional default-value policy. DefaultNone means no
	// default is declared.
	Default DefaultValue

	// LowerBound is the optional lower bound of accepted values. A nil
	// bound is absent; the marshaled record only advertises a bound when
	// one is present here.
	LowerBound *Data

	// UpperBound is the optional upper bound of accepted values.
	UpperBound *Data
}

// PortBuilder builds a Port with optional hints, default and bounds.
type PortBuilder struct {
	port Port
}

// NewPort starts building a port with the given name and kind.
func NewPort(name string, desc PortDescriptor) *PortBuilder {
	return &PortBuilder{port: Port{Name: name, Desc: desc}}
}

// Hint adds interpretation hints.
func (b *PortBuilder) Hint(hint ControlHint) *PortBuilder {
	b.port.Hint |= hint
	return b
}

// Default sets the default-value policy.
func (b *PortBuilder) Default(def DefaultValue) *PortBuilder {
	b.port.Default = def
	return b
}

// LowerBound sets the lower bound.
func (b *PortBuilder) LowerBound(v Data) *PortBuilder {
	b.port.LowerBound = &v
	return b
}

// UpperBound sets the upper bound.
func (b *PortBuilder) UpperBound(v Data) *PortBuilder {
	b.port.UpperBound = &v
	return b
}

// Bounds sets both bounds at once.
func (b *PortBuilder) Bounds(lower, upper Data) *PortBuilder {
	return b.LowerBound(lower).UpperBound(upper)
}

// Build returns the built port.
func (b *PortBuilder) Build() Port {
	return b.port
}

// PortData is the data a host has connected to a port. It is a closed
// union over the four port kinds: a read-only sample slice, a writable
// sample slice, a read-only control scalar or a writable control scalar.
type PortData struct {
	desc    PortDescriptor
	audio   []Data
	control *Data
}

// AudioInputData wraps a host input buffer.
func AudioInputData(buf []Data) PortData {
	return PortData{desc: AudioInput, audio: buf}
}

// AudioOutputData wraps a host output buffer.
func AudioOutputData(buf []Data) PortData {
	return PortData{desc: AudioOutput, audio: buf}
}

// ControlInputData wraps a host-set control scalar.
func ControlInputData(value *Data) PortData {
	return PortData{desc: ControlInput, control: value}
}

// ControlOutputData wraps a plugin-written control scalar.
func ControlOutputData(value *Data) PortData {
	return PortData{desc: ControlOutput, control: value}
}

// Desc returns the port kind the data was built for.
func (d PortData) Desc() PortDescriptor { return d.desc }

// PortConnection pairs a port definition with the data the host bound to
// it. Run receives one connection per declared port, in declaration
// order.
type PortConnection struct {
	// Port is the definition of the connected port.
	Port Port

	// Data is the bound data. The accessor methods are usually more
	// convenient than switching on it directly.
	Data PortData
}

// Audio returns the samples of an audio input port. It panics if the
// connection is not an audio input.
func (c *PortConnection) Audio() []Data {
	if c.Data.desc != AudioInput {
		panic(fmt.Sprintf("ladspa: Audio called on %s port %q", c.Data.desc, c.Port.Name))
	}
	return c.Data.audio
}

// AudioOut returns the writable samples of an audio output port. It
// panics if the connection is not an audio output.
func (c *PortConnection) AudioOut() []Data {
	if c.Data.desc != AudioOutput {
		panic(fmt.Sprintf("ladspa: AudioOut called on %s port %q", c.Data.desc, c.Port.Name))
	}
	return c.Data.audio
}

// Control returns the value of a control input port. It panics if the
// connection is not a control input.
func (c *PortConnection) Control() Data {
	if c.Data.desc != ControlInput {
		panic(fmt.Sprintf("ladspa: Control called on %s port %q", c.Data.desc, c.Port.Name))
	}
	return *c.Data.control
}

// ControlOut returns a pointer to the value of a control output port. It
// panics if the connection is not a control output.
func (c *PortConnection) ControlOut() *Data {
	if c.Data.desc != ControlOutput {
		panic(fmt.Sprintf("ladspa: ControlOut called on %s port %q", c.Data.desc, c.Port.Name))
	}
	return c.Data.control
}
