// Package chart assembles chart descriptors from parsed metric groups.
package chart

// BytesPerSecond is the throughput unit emitted by the counter dumps.
const BytesPerSecond = "b/s"

// MegabytesPerSecond is the display unit for BytesPerSecond.
const MegabytesPerSecond = "MB/s"

// BytesPerMegabyte is the factor between BytesPerSecond and MegabytesPerSecond.
// 1 MB = 10^6 bytes, matching the decimal prefixes used by the dumps.
const BytesPerMegabyte = 1e6

// NormalizeUnit returns the display unit for unit and the factor every value
// of that chart has to be divided by. Both must be applied together: the
// label is only correct for data divided by the returned scale.
func NormalizeUnit(unit string) (label string, scale float64) {
	switch unit {
	case BytesPerSecond:
		return MegabytesPerSecond, BytesPerMegabyte
	default:
		return unit, 1
	}
}

// Rescale divides v by scale.
func Rescale(v, scale float64) float64 {
	if scale == 1 {
		return v
	}
	return v / scale
}
