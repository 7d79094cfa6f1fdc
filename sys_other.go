//go:build !linux

package port

import "os"

func fdatasync(f *os.File) error {
	return f.Sync()
}
