package port

import (
	"encoding/binary"
	"io"
	"os"
	"runtime/pprof"
)

// LittleEndian reports whether the host stores integers little-endian.
var LittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// Fdatasync flushes f's data (but not necessarily its metadata) to stable
// storage. Platforms without fdatasync fall back to a full fsync.
func Fdatasync(f *os.File) error {
	return fdatasync(f)
}

// GetHeapProfile writes the current heap profile to w in pprof format.
// It reports false if no profile could be written.
func GetHeapProfile(w io.Writer) bool {
	p := pprof.Lookup("heap")
	if p == nil {
		return false
	}
	return p.WriteTo(w, 0) == nil
}
