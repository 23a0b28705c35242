// File: internal/strutil/strutil.go
// Package strutil converts fixed-size native string buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package strutil

// FromNulTerminated interprets b as a nul-terminated byte buffer and returns
// everything before the first nul. A buffer without a nul converts whole.
func FromNulTerminated(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// ContainsNul reports whether s carries an interior nul byte, which the
// native layer would silently truncate at.
func ContainsNul(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return true
		}
	}
	return false
}
