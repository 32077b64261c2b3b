package codec

// UnpackFlags expands a bit-per-flag integer into booleans, testing bit i
// for i in 0..n-2. The top bit of the requested width is deliberately
// dropped (the replay format reserves it), so UnpackFlags(v, 16) yields
// exactly 15 booleans.
func UnpackFlags(value uint32, n int) []bool {
	if n <= 1 {
		return nil
	}
	flags := make([]bool, n-1)
	for i := range flags {
		flags[i] = value&(1<<uint(i)) != 0
	}
	return flags
}

// LowMask returns an integer with bits 0..n-1 set.
func LowMask(n uint) uint32 {
	var mask uint32
	for i := uint(0); i < n; i++ {
		mask |= 1 << i
	}
	return mask
}
