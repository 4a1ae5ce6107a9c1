package plugin

// The five lifecycle entry points plus descriptor lookup, exported to C.
// The trampolines installed into each marshaled descriptor (registry.go)
// land here; ladspa_descriptor itself is defined in bridge/bridge.c and
// forwards to goDescriptorFor. Handles passed to and from the host are
// numeric instance IDs, never Go pointers.

// #cgo CFLAGS: -I../../include
// #include "ladspa.h"
import "C"
import "unsafe"

//export goDescriptorFor
func goDescriptorFor(index C.ulong) unsafe.Pointer {
	return unsafe.Pointer(descriptorFor(uint64(index)))
}

//export goInstantiate
func goInstantiate(desc unsafe.Pointer, sampleRate C.ulong) unsafe.Pointer {
	md := sourceDescriptor((*C.LADSPA_Descriptor)(desc))
	if md == nil {
		return nil
	}
	id := instantiate(md.source, uint64(sampleRate))
	if id == 0 {
		return nil
	}
	return unsafe.Pointer(id)
}

//export goConnectPort
func goConnectPort(instance unsafe.Pointer, port C.ulong, dataLocation *C.LADSPA_Data) {
	connectPort(uintptr(instance), uint64(port), unsafe.Pointer(dataLocation))
}

//export goActivate
func goActivate(instance unsafe.Pointer) {
	activateInstance(uintptr(instance))
}

//export goRun
func goRun(instance unsafe.Pointer, sampleCount C.ulong) {
	runInstance(uintptr(instance), uint64(sampleCount))
}

//export goDeactivate
func goDeactivate(instance unsafe.Pointer) {
	deactivateInstance(uintptr(instance))
}

//export goCleanup
func goCleanup(instance unsafe.Pointer) {
	cleanupInstance(uintptr(instance))
}

//export goTeardown
func goTeardown() {
	teardownRegistry()
}
