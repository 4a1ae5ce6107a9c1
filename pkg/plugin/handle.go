package plugin

import (
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/justyntemme/ladspago/pkg/ladspa"
)

// binding records what the host connected to one port: the port
// definition, the raw data location, and the typed connection built over
// it. Audio views are re-derived from raw on every run call, because the
// host supplies only the sample count there, never the pointer.
type binding struct {
	port ladspa.Port
	raw  unsafe.Pointer
	conn *ladspa.PortConnection
}

// instance is the per-instantiation state behind a LADSPA handle. All
// calls on one instance are strictly sequential per the host protocol,
// so no locking is needed inside it.
type instance struct {
	desc   *ladspa.PluginDescriptor
	plugin ladspa.Plugin

	bindings []*binding // indexed by port, nil until connected

	// ports is the ordered connection list handed to Run. It stays nil
	// until every declared port has been bound at least once.
	ports []*ladspa.PortConnection
}

// Instances are referenced from C by numeric IDs, never by Go pointers.
var (
	instances   = make(map[uintptr]*instance)
	instancesMu sync.RWMutex
	nextID      uintptr = 1
)

func registerInstance(inst *instance) uintptr {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	id := nextID
	nextID++
	instances[id] = inst
	return id
}

func unregisterInstance(id uintptr) *instance {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	inst := instances[id]
	delete(instances, id)
	return inst
}

func getInstance(id uintptr) *instance {
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	if id == 0 {
		return nil
	}
	return instances[id]
}

// instantiate creates an instance through the descriptor's factory. It
// returns 0 when the factory declines or faults; no cleanup call will
// follow for such a handle.
func instantiate(desc *ladspa.PluginDescriptor, sampleRate uint64) uintptr {
	var p ladspa.Plugin
	ok := containFault("PluginDescriptor.New", func() {
		p = desc.New(desc, sampleRate)
	})
	if !ok || p == nil {
		return 0
	}

	inst := &instance{
		desc:     desc,
		plugin:   p,
		bindings: make([]*binding, len(desc.Ports)),
	}
	return registerInstance(inst)
}

// connectPort binds a raw data location to a port, replacing any earlier
// binding at that index. A port index beyond the declared port count is a
// host contract violation and fails loudly; recovering silently would
// mask the host bug and risk memory corruption later.
func connectPort(id uintptr, portIndex uint64, dataLocation unsafe.Pointer) {
	inst := getInstance(id)
	if inst == nil {
		Logger().Warn("connect_port on unknown handle", zap.Uintptr("handle", id))
		return
	}
	if portIndex >= uint64(len(inst.bindings)) {
		panic(fmt.Sprintf("ladspago: connect_port index %d out of range for %q (%d ports)",
			portIndex, inst.desc.Label, len(inst.bindings)))
	}

	port := inst.desc.Ports[portIndex]
	conn := &ladspa.PortConnection{Port: port}
	switch port.Desc {
	case ladspa.AudioInput:
		// Length is unknown until run supplies the sample count.
		conn.Data = ladspa.AudioInputData(nil)
	case ladspa.AudioOutput:
		conn.Data = ladspa.AudioOutputData(nil)
	case ladspa.ControlInput:
		conn.Data = ladspa.ControlInputData((*ladspa.Data)(dataLocation))
	case ladspa.ControlOutput:
		conn.Data = ladspa.ControlOutputData((*ladspa.Data)(dataLocation))
	default:
		panic(fmt.Sprintf("ladspago: port %d of %q has invalid descriptor", portIndex, inst.desc.Label))
	}

	inst.bindings[portIndex] = &binding{port: port, raw: dataLocation, conn: conn}

	// Expose the ports list only once every declared port is bound.
	inst.ports = nil
	for _, b := range inst.bindings {
		if b == nil {
			return
		}
	}
	inst.ports = make([]*ladspa.PortConnection, len(inst.bindings))
	for i, b := range inst.bindings {
		inst.ports[i] = b.conn
	}
}

// refreshAudioViews rebuilds every audio port view over the bound
// location with the current sample count. This happens unconditionally
// at the top of every run call.
func (inst *instance) refreshAudioViews(sampleCount uint64) {
	for _, b := range inst.bindings {
		if b == nil || !b.port.Desc.IsAudio() {
			continue
		}
		buf := unsafe.Slice((*ladspa.Data)(b.raw), sampleCount)
		if b.port.Desc.IsInput() {
			b.conn.Data = ladspa.AudioInputData(buf)
		} else {
			b.conn.Data = ladspa.AudioOutputData(buf)
		}
	}
}

func activateInstance(id uintptr) {
	inst := getInstance(id)
	if inst == nil {
		Logger().Warn("activate on unknown handle", zap.Uintptr("handle", id))
		return
	}
	containFault("Plugin.Activate", inst.plugin.Activate)
}

func runInstance(id uintptr, sampleCount uint64) {
	inst := getInstance(id)
	if inst == nil {
		Logger().Warn("run on unknown handle", zap.Uintptr("handle", id))
		return
	}
	inst.refreshAudioViews(sampleCount)
	containFault("Plugin.Run", func() {
		inst.plugin.Run(int(sampleCount), inst.ports)
	})
}

func deactivateInstance(id uintptr) {
	inst := getInstance(id)
	if inst == nil {
		Logger().Warn("deactivate on unknown handle", zap.Uintptr("handle", id))
		return
	}
	containFault("Plugin.Deactivate", inst.plugin.Deactivate)
}

// cleanupInstance releases the instance and everything it owns. The
// bound buffers are host memory and are never touched here.
func cleanupInstance(id uintptr) {
	inst := unregisterInstance(id)
	if inst == nil {
		Logger().Warn("cleanup on unknown handle", zap.Uintptr("handle", id))
		return
	}
	inst.plugin = nil
	inst.bindings = nil
	inst.ports = nil
}
