//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

func init() {
	hasARM64CRC = cpu.ARM64.HasCRC32
}
