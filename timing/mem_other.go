//go:build !linux

package timing

// totalSystemMemory reports that total RAM is not detectable on this
// platform. Callers treat the zero value as "unknown".
func totalSystemMemory() (uint64, bool) {
	return 0, false
}
