// Package goid reports the id of the calling goroutine.
package goid

import "runtime"

// Get returns the current goroutine's ID.
// It parses the "goroutine N [" prefix of runtime.Stack, so it costs a
// small stack snapshot and must not be used on very hot paths.
func Get() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] >= '0' && buf[i] <= '9' {
			id = id*10 + uint64(buf[i]-'0')
		} else {
			break
		}
	}
	return id
}
