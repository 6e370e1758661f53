package sbox

func substituteGeneric(a uint32) uint32 {
	var r uint32
	for i := range 8 {
		shift := uint(4 * i)
		r |= uint32(Pi[i][(a>>shift)&0x0f]) << shift
	}
	return r
}
