// File: core/dispatch/validator.go
// Package dispatch validates and routes drained native records.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

import (
	"fmt"
	"unsafe"

	"github.com/momentics/steambridge/driver"
)

// Record validates cb against the layout of T and reinterprets the native
// buffer in place. The returned pointer aliases native-owned memory and is
// valid only until the record is freed; callers map it to an owned value
// before the loop iteration ends.
//
// A nil pointer, a length that differs from T's size, or a misaligned
// pointer all indicate a violated native ABI contract. Continuing would read
// memory under a false type assumption, so each is a fatal assertion rather
// than an error.
func Record[T any](cb driver.RawCallback) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))

	if cb.Data == nil {
		panic(fmt.Sprintf("dispatch: nil buffer for callback %d (%T)", cb.ID, zero))
	}
	if cb.Len != size {
		panic(fmt.Sprintf("dispatch: callback %d carries %d bytes, record %T requires %d",
			cb.ID, cb.Len, zero, size))
	}
	if align := unsafe.Alignof(zero); uintptr(cb.Data)%align != 0 {
		panic(fmt.Sprintf("dispatch: callback %d buffer %p violates %T alignment %d",
			cb.ID, cb.Data, zero, align))
	}
	return (*T)(cb.Data)
}
