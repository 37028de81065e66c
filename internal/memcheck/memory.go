// internal/memcheck/memory.go
package memcheck

import (
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/mem"
)

// MiB is the size of one mebibyte.
const MiB = 1 << 20

// minHeadroom is the memory that must stay available after loading the
// input, so the rest of the system is not starved.
const minHeadroom = 64 * MiB

// Guard fails when holding need bytes in memory would leave less than
// minHeadroom available on the system. Best effort: on platforms where
// memory cannot be queried, the load proceeds.
func Guard(need int64) error {
	if need < 0 {
		need = 0
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil
	}
	if uint64(need)+minHeadroom > vm.Available {
		return errors.Errorf(
			"not enough memory to load the input wordlist: need %d MiB, %d MiB available",
			need/MiB, vm.Available/MiB)
	}
	return nil
}
