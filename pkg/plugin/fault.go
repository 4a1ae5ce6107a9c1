package plugin

import (
	"runtime/debug"

	"go.uber.org/zap"
)

// containFault runs fn inside a scoped fault boundary. A panic raised by
// fn (user plugin code, or the typed accessors it calls) is caught here,
// logged, and reported as ok == false so the caller can degrade the host
// call to a benign no-op. Letting a panic unwind across the C boundary
// would be undefined behavior for the host.
//
// Containment protects the host process from logic faults in plugin
// code, not from corruption the plugin performs through the raw buffers
// it was handed.
func containFault(op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("panic in plugin code suppressed",
				zap.String("op", op),
				zap.Any("value", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	fn()
	return true
}
