package port

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLittleEndian(t *testing.T) {
	switch runtime.GOARCH {
	case "amd64", "arm64", "386", "riscv64", "loong64":
		assert.True(t, LittleEndian)
	case "s390x", "ppc64", "mips", "mips64":
		assert.False(t, LittleEndian)
	}
}

func TestFdatasync(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "000001.log"))
	require.NoError(t, err)

	_, err = f.Write([]byte("record"))
	require.NoError(t, err)
	require.NoError(t, Fdatasync(f))
	require.NoError(t, f.Close())

	assert.Error(t, Fdatasync(f))
}

func TestGetHeapProfile(t *testing.T) {
	var buf bytes.Buffer
	require.True(t, GetHeapProfile(&buf))
	assert.NotZero(t, buf.Len())
}
