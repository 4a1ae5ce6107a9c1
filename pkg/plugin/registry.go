package plugin

// #cgo CFLAGS: -I../../include
// #include <stdlib.h>
// #include "ladspa.h"
//
// extern void *goInstantiate(void *desc, unsigned long sampleRate);
// extern void goConnectPort(void *instance, unsigned long port, LADSPA_Data *dataLocation);
// extern void goActivate(void *instance);
// extern void goRun(void *instance, unsigned long sampleCount);
// extern void goDeactivate(void *instance);
// extern void goCleanup(void *instance);
// extern void goTeardown(void);
//
// static LADSPA_Handle bridgeInstantiate(const LADSPA_Descriptor *desc, unsigned long sampleRate) {
//     return goInstantiate((void *)desc, sampleRate);
// }
// static void bridgeConnectPort(LADSPA_Handle instance, unsigned long port, LADSPA_Data *dataLocation) {
//     goConnectPort(instance, port, dataLocation);
// }
// static void bridgeActivate(LADSPA_Handle instance) {
//     goActivate(instance);
// }
// static void bridgeRun(LADSPA_Handle instance, unsigned long sampleCount) {
//     goRun(instance, sampleCount);
// }
// static void bridgeDeactivate(LADSPA_Handle instance) {
//     goDeactivate(instance);
// }
// static void bridgeCleanup(LADSPA_Handle instance) {
//     goCleanup(instance);
// }
// static void bridgeTeardown(void) {
//     goTeardown();
// }
//
// static void bridgeInstallCallbacks(LADSPA_Descriptor *desc) {
//     desc->instantiate = bridgeInstantiate;
//     desc->connect_port = bridgeConnectPort;
//     desc->activate = bridgeActivate;
//     desc->run = bridgeRun;
//     desc->run_adding = NULL;          /* extension not supported */
//     desc->set_run_adding_gain = NULL;
//     desc->deactivate = bridgeDeactivate;
//     desc->cleanup = bridgeCleanup;
// }
// static void bridgeRegisterTeardown(void) {
//     atexit(bridgeTeardown);
// }
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/justyntemme/ladspago/pkg/ladspa"
)

// marshaledDescriptor pairs the flat C record exposed to the host with
// the typed descriptor it was built from. Every C allocation backing the
// record is listed in allocs, in order of acquisition; teardown frees
// them in reverse.
type marshaledDescriptor struct {
	c      *C.LADSPA_Descriptor
	source *ladspa.PluginDescriptor
	allocs []unsafe.Pointer
}

// The registry is process-wide. Hosts probe descriptors during a
// single-threaded startup phase before instantiating anything, so the
// lazy first access is a documented single-threaded precondition rather
// than a locked path.
var (
	descriptors        []*marshaledDescriptor
	registryUp         bool
	teardownRegistered bool
)

func ensureRegistry() {
	if registryUp {
		return
	}
	registryUp = true
	loadConfig()
	if !teardownRegistered {
		teardownRegistered = true
		C.bridgeRegisterTeardown()
	}
}

// getDescriptor returns the marshaled descriptor for index, building and
// caching it on first request. A cached index always yields the same
// allocation; hosts rely on two probes of one index being referentially
// identical. A declined index (no lookup registered, lookup returned
// nil, or lookup faulted) is not cached, so a later re-probe is retried.
func getDescriptor(index uint64) *marshaledDescriptor {
	ensureRegistry()

	if index < uint64(len(descriptors)) && descriptors[index] != nil {
		return descriptors[index]
	}

	if globalLookup == nil {
		return nil
	}
	var src *ladspa.PluginDescriptor
	ok := containFault("descriptor lookup", func() {
		src = globalLookup(index)
	})
	if !ok || src == nil {
		return nil
	}

	md := marshalDescriptor(src)

	// The host hands the record pointer back on instantiate; the record
	// carries its own registry index so the typed descriptor can be
	// recovered without passing a Go pointer through C.
	md.c.ImplementationData = unsafe.Pointer(uintptr(index) + 1)

	for uint64(len(descriptors)) <= index {
		descriptors = append(descriptors, nil)
	}
	descriptors[index] = md

	Logger().Debug("descriptor marshaled",
		zap.Uint64("index", index),
		zap.Any("descriptor", md.snapshot()))
	return md
}

// descriptorFor is the Go side of the ladspa_descriptor entry point.
func descriptorFor(index uint64) *C.LADSPA_Descriptor {
	if md := getDescriptor(index); md != nil {
		return md.c
	}
	return nil
}

// sourceDescriptor recovers the registry entry a marshaled record was
// built from, or nil for a record the registry does not know.
func sourceDescriptor(d *C.LADSPA_Descriptor) *marshaledDescriptor {
	if d == nil || d.ImplementationData == nil {
		return nil
	}
	idx := uintptr(d.ImplementationData) - 1
	if idx >= uintptr(len(descriptors)) {
		return nil
	}
	return descriptors[idx]
}

// marshalDescriptor builds the flat, host-owned copy of src. Every
// string and array is an independent heap allocation recorded in the
// ledger. The record is fully initialized before it is returned; an
// allocation failure aborts the process rather than exposing a
// half-built descriptor.
func marshalDescriptor(src *ladspa.PluginDescriptor) *marshaledDescriptor {
	md := &marshaledDescriptor{source: src}

	d := (*C.LADSPA_Descriptor)(md.alloc(1, C.sizeof_LADSPA_Descriptor))
	md.c = d

	d.UniqueID = C.ulong(src.UniqueID)
	d.Label = md.cstring(src.Label)
	d.Properties = C.LADSPA_Properties(src.Properties)
	d.Name = md.cstring(src.Name)
	d.Maker = md.cstring(src.Maker)
	d.Copyright = md.cstring(src.Copyright)

	n := len(src.Ports)
	d.PortCount = C.ulong(n)

	portDescs := (*C.LADSPA_PortDescriptor)(md.alloc(n, C.sizeof_LADSPA_PortDescriptor))
	portNames := (**C.char)(md.alloc(n, C.size_t(unsafe.Sizeof((*C.char)(nil)))))
	rangeHints := (*C.LADSPA_PortRangeHint)(md.alloc(n, C.sizeof_LADSPA_PortRangeHint))

	descSlice := unsafe.Slice(portDescs, n)
	nameSlice := unsafe.Slice(portNames, n)
	hintSlice := unsafe.Slice(rangeHints, n)

	for i, port := range src.Ports {
		descSlice[i] = C.LADSPA_PortDescriptor(port.Desc)
		nameSlice[i] = md.cstring(port.Name)

		// The bounded bits are derived from the presence of a bound,
		// independent of the hints the author set. An absent bound is
		// encoded as zero but carries no meaning without its bit.
		hint := int(port.Hint) | int(port.Default)
		if port.LowerBound != nil {
			hint |= C.LADSPA_HINT_BOUNDED_BELOW
			hintSlice[i].LowerBound = C.LADSPA_Data(*port.LowerBound)
		}
		if port.UpperBound != nil {
			hint |= C.LADSPA_HINT_BOUNDED_ABOVE
			hintSlice[i].UpperBound = C.LADSPA_Data(*port.UpperBound)
		}
		hintSlice[i].HintDescriptor = C.LADSPA_PortRangeHintDescriptor(hint)
	}

	d.PortDescriptors = portDescs
	d.PortNames = portNames
	d.PortRangeHints = rangeHints

	C.bridgeInstallCallbacks(d)
	return md
}

func (m *marshaledDescriptor) alloc(n int, size C.size_t) unsafe.Pointer {
	if n == 0 {
		n = 1 // keep the ledger uniform for port-less descriptors
	}
	p := C.calloc(C.size_t(n), size)
	if p == nil {
		panic("ladspago: out of memory marshaling descriptor")
	}
	m.allocs = append(m.allocs, p)
	return p
}

func (m *marshaledDescriptor) cstring(s string) *C.char {
	p := C.CString(s)
	m.allocs = append(m.allocs, unsafe.Pointer(p))
	return p
}

// release frees every allocation behind the record, in reverse order of
// acquisition, and drops the retained typed descriptor.
func (m *marshaledDescriptor) release() {
	for i := len(m.allocs) - 1; i >= 0; i-- {
		C.free(m.allocs[i])
	}
	m.allocs = nil
	m.c = nil
	m.source = nil
}

// teardownRegistry frees the whole registry. It runs from the atexit
// hook and is idempotent: a second call finds an empty table.
func teardownRegistry() {
	for _, md := range descriptors {
		if md != nil {
			md.release()
		}
	}
	descriptors = nil
	registryUp = false
	Logger().Debug("descriptor registry torn down")
}

// descriptorSnapshot is a pure-Go readback of a marshaled record, used
// for debug logging and verification. It follows the flat record's
// encoding rules: a bound value is only meaningful when the matching
// bounded bit is set in Hint.
type descriptorSnapshot struct {
	UniqueID   uint64
	Label      string
	Properties int
	Name       string
	Maker      string
	Copyright  string
	PortDescs  []int
	PortNames  []string
	PortHints  []rangeHintSnapshot
}

type rangeHintSnapshot struct {
	Hint  int
	Lower float32
	Upper float32
}

func (m *marshaledDescriptor) snapshot() descriptorSnapshot {
	d := m.c
	snap := descriptorSnapshot{
		UniqueID:   uint64(d.UniqueID),
		Label:      C.GoString(d.Label),
		Properties: int(d.Properties),
		Name:       C.GoString(d.Name),
		Maker:      C.GoString(d.Maker),
		Copyright:  C.GoString(d.Copyright),
	}
	n := int(d.PortCount)
	descSlice := unsafe.Slice(d.PortDescriptors, n)
	nameSlice := unsafe.Slice(d.PortNames, n)
	hintSlice := unsafe.Slice(d.PortRangeHints, n)
	for i := 0; i < n; i++ {
		snap.PortDescs = append(snap.PortDescs, int(descSlice[i]))
		snap.PortNames = append(snap.PortNames, C.GoString(nameSlice[i]))
		snap.PortHints = append(snap.PortHints, rangeHintSnapshot{
			Hint:  int(hintSlice[i].HintDescriptor),
			Lower: float32(hintSlice[i].LowerBound),
			Upper: float32(hintSlice[i].UpperBound),
		})
	}
	return snap
}
