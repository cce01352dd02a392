package timing

import (
	"fmt"
	"runtime"
)

// SystemInfo describes the host a measurement ran on. Informational side
// channel only: reported alongside results, never part of a timed interval.
type SystemInfo struct {
	// CPU is a coarse processor identifier (architecture).
	CPU string

	// NumCPU is the number of logical CPUs usable by the process.
	NumCPU int

	// TotalRAM is the total physical memory in bytes, 0 if undetectable.
	TotalRAM uint64

	// OS is the operating system name.
	OS string
}

// Collect gathers host metadata. Never fails: fields that cannot be
// determined are left at their zero value rather than aborting a benchmark
// over cosmetic data.
func Collect() SystemInfo {
	info := SystemInfo{
		CPU:    runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
		OS:     runtime.GOOS,
	}
	if ram, ok := totalSystemMemory(); ok {
		info.TotalRAM = ram
	}

	return info
}

// String renders the metadata in a single log-friendly line.
func (s SystemInfo) String() string {
	const bytesPerGiB = 1 << 30
	ram := "unknown"
	if s.TotalRAM > 0 {
		ram = fmt.Sprintf("%.2f GiB", float64(s.TotalRAM)/bytesPerGiB)
	}

	return fmt.Sprintf("cpu=%s cores=%d ram=%s os=%s", s.CPU, s.NumCPU, ram, s.OS)
}
