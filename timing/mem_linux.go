//go:build linux

package timing

import "golang.org/x/sys/unix"

// totalSystemMemory returns total physical RAM on Linux via sysinfo(2).
func totalSystemMemory() (uint64, bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, false
	}

	// Total RAM in bytes = Totalram * Unit.
	return info.Totalram * uint64(info.Unit), true
}
