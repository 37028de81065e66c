// internal/memcheck/memory_test.go
package memcheck

import (
	"math"
	"testing"

	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardAllowsSmallLoads(t *testing.T) {
	require.NoError(t, Guard(0))
	require.NoError(t, Guard(-1))
	require.NoError(t, Guard(1024))
}

func TestGuardRejectsAbsurdLoads(t *testing.T) {
	if _, err := mem.VirtualMemory(); err != nil {
		t.Skipf("memory stats unavailable: %v", err)
	}
	err := Guard(math.MaxInt64)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough memory")
}
