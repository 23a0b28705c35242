// File: core/callresult/reinterpret.go
// Package callresult correlates async native calls with awaiting futures.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package callresult

import (
	"fmt"
	"unsafe"
)

// Reinterpret decodes delivered result bytes as the fixed-size record T.
//
// A length mismatch means the requester and the native layer disagree about
// the record layout. That is an ABI violation, not bad input, so it aborts
// instead of returning an error.
func Reinterpret[T any](data []byte) T {
	var v T
	size := int(unsafe.Sizeof(v))
	if len(data) != size {
		panic(fmt.Sprintf("callresult: result size %d does not match record %T size %d",
			len(data), v, size))
	}
	if size == 0 {
		return v
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	copy(dst, data)
	return v
}
