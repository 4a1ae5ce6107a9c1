package plugin

// End-to-end fixtures driven through the real bridge entry points. The
// stereo delay and ring modulator mirror the plugins under examples/.

import (
	"github.com/justyntemme/ladspago/pkg/dsp/delayline"
	"github.com/justyntemme/ladspago/pkg/dsp/oscillator"
	"github.com/justyntemme/ladspago/pkg/ladspa"
)

// resetBridge clears the global registry and installs a fresh lookup so
// each test starts from an empty, never-probed state.
func resetBridge(lookup DescriptorFunc) {
	teardownRegistry()
	globalLookup = lookup
}

// lookupFor serves a fixed descriptor list by index.
func lookupFor(descs ...*ladspa.PluginDescriptor) DescriptorFunc {
	return func(index uint64) *ladspa.PluginDescriptor {
		if index < uint64(len(descs)) {
			return descs[index]
		}
		return nil
	}
}

const maxDelaySeconds = 5.0

type stereoDelay struct {
	sampleRate float64
	line       *delayline.Stereo
}

func (d *stereoDelay) Activate() {
	if d.line == nil {
		d.line = delayline.NewStereo(int(d.sampleRate * maxDelaySeconds))
	} else {
		d.line.Reset()
	}
}

func (d *stereoDelay) Run(sampleCount int, ports []*ladspa.PortConnection) {
	inL, inR := ports[0].Audio(), ports[1].Audio()
	outL, outR := ports[2].AudioOut(), ports[3].AudioOut()
	delayL := int(ports[4].Control() * float32(d.sampleRate))
	delayR := int(ports[5].Control() * float32(d.sampleRate))
	dryWetL, dryWetR := ports[6].Control(), ports[7].Control()

	for i := 0; i < sampleCount; i++ {
		wetL, wetR := d.line.Read(delayL, delayR)
		outL[i] = dryWetL*inL[i] + (1.0-dryWetL)*wetL
		outR[i] = dryWetR*inR[i] + (1.0-dryWetR)*wetR
		d.line.Write(inL[i], inR[i])
	}
}

func (d *stereoDelay) Deactivate() {}

func stereoDelayDescriptor() *ladspa.PluginDescriptor {
	return &ladspa.PluginDescriptor{
		UniqueID:  400,
		Label:     "stereo_delay",
		Name:      "Stereo Delay",
		Maker:     "ladspago examples",
		Copyright: "None",
		Ports: []ladspa.Port{
			ladspa.NewPort("Left Audio In", ladspa.AudioInput).Build(),
			ladspa.NewPort("Right Audio In", ladspa.AudioInput).Build(),
			ladspa.NewPort("Left Audio Out", ladspa.AudioOutput).Build(),
			ladspa.NewPort("Right Audio Out", ladspa.AudioOutput).Build(),
			ladspa.NewPort("Left Delay (seconds)", ladspa.ControlInput).
				Default(ladspa.Default1).Bounds(0.0, maxDelaySeconds).Build(),
			ladspa.NewPort("Right Delay (seconds)", ladspa.ControlInput).
				Default(ladspa.Default1).Bounds(0.0, maxDelaySeconds).Build(),
			ladspa.NewPort("Left Dry/Wet", ladspa.ControlInput).
				Default(ladspa.DefaultMiddle).Bounds(0.0, 1.0).Build(),
			ladspa.NewPort("Right Dry/Wet", ladspa.ControlInput).
				Default(ladspa.DefaultMiddle).Bounds(0.0, 1.0).Build(),
		},
		New: func(_ *ladspa.PluginDescriptor, sampleRate uint64) ladspa.Plugin {
			return &stereoDelay{sampleRate: float64(sampleRate)}
		},
	}
}

type ringMod struct {
	osc *oscillator.Oscillator
}

func (r *ringMod) Activate() {
	r.osc.Reset()
}

func (r *ringMod) Run(sampleCount int, ports []*ladspa.PortConnection) {
	in, out := ports[0].Audio(), ports[1].AudioOut()
	r.osc.SetFrequency(float64(ports[2].Control()))
	for i := 0; i < sampleCount; i++ {
		out[i] = in[i] * r.osc.Sine()
	}
}

func (r *ringMod) Deactivate() {}

func ringModDescriptor() *ladspa.PluginDescriptor {
	return &ladspa.PluginDescriptor{
		UniqueID:  401,
		Label:     "ring_mod",
		Name:      "Mono Ring Modulator",
		Maker:     "ladspago examples",
		Copyright: "None",
		Ports: []ladspa.Port{
			ladspa.NewPort("Audio In", ladspa.AudioInput).Build(),
			ladspa.NewPort("Audio Out", ladspa.AudioOutput).Build(),
			ladspa.NewPort("Frequency", ladspa.ControlInput).
				Hint(ladspa.HintSampleRate | ladspa.HintLogarithmic).
				Default(ladspa.Default440).
				Bounds(0.0, 0.5).
				Build(),
		},
		New: func(_ *ladspa.PluginDescriptor, sampleRate uint64) ladspa.Plugin {
			return &ringMod{osc: oscillator.New(float64(sampleRate))}
		},
	}
}

// passthrough copies its mono input to its output; activationLog records
// lifecycle calls so tests can observe them.
type passthrough struct {
	activationLog []string
}

func (p *passthrough) Activate() {
	p.activationLog = append(p.activationLog, "activate")
}

func (p *passthrough) Run(sampleCount int, ports []*ladspa.PortConnection) {
	in, out := ports[0].Audio(), ports[1].AudioOut()
	for i := 0; i < sampleCount; i++ {
		out[i] = in[i]
	}
}

func (p *passthrough) Deactivate() {
	p.activationLog = append(p.activationLog, "deactivate")
}

func passthroughDescriptor() *ladspa.PluginDescriptor {
	return &ladspa.PluginDescriptor{
		UniqueID:  9000,
		Label:     "passthrough",
		Name:      "Passthrough",
		Maker:     "ladspago tests",
		Copyright: "None",
		Ports: []ladspa.Port{
			ladspa.NewPort("In", ladspa.AudioInput).Build(),
			ladspa.NewPort("Out", ladspa.AudioOutput).Build(),
		},
		New: func(_ *ladspa.PluginDescriptor, _ uint64) ladspa.Plugin {
			return &passthrough{}
		},
	}
}

// faulty panics in whichever lifecycle operations its descriptor asks
// for.
type faulty struct {
	panicInRun        bool
	panicInActivate   bool
	panicInDeactivate bool
	runs              int
}

func (f *faulty) Activate() {
	if f.panicInActivate {
		panic("activate fault")
	}
}

func (f *faulty) Run(sampleCount int, ports []*ladspa.PortConnection) {
	f.runs++
	if f.panicInRun {
		panic("run fault")
	}
}

func (f *faulty) Deactivate() {
	if f.panicInDeactivate {
		panic("deactivate fault")
	}
}

func faultyDescriptor(configure func(*faulty)) *ladspa.PluginDescriptor {
	return &ladspa.PluginDescriptor{
		UniqueID:  9001,
		Label:     "faulty",
		Name:      "Faulty",
		Maker:     "ladspago tests",
		Copyright: "None",
		Ports: []ladspa.Port{
			ladspa.NewPort("In", ladspa.AudioInput).Build(),
		},
		New: func(_ *ladspa.PluginDescriptor, _ uint64) ladspa.Plugin {
			f := &faulty{}
			configure(f)
			return f
		},
	}
}
