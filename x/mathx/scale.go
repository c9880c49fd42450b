package mathx

// ScaleU32 rescales v from [0..from] to [0..to] with 64-bit intermediates.
// from==0 yields 0; v above from saturates at to.
func ScaleU32(v, from, to uint32) uint32 {
	if from == 0 {
		return 0
	}
	if v > from {
		v = from
	}
	return uint32(uint64(v) * uint64(to) / uint64(from))
}
