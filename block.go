package magma

// EncryptBlock applies the encryption transformation E to the block a:
//
//	E = G*[K_32] G[K_31] ... G[K_2] G[K_1]
func EncryptBlock(a uint64, s *Schedule) uint64 {
	a1, a0 := uint32(a>>32), uint32(a)
	for i := range Rounds - 1 {
		a1, a0 = FeistelStep(s[i], a1, a0)
	}
	return FeistelFinal(s[Rounds-1], a1, a0)
}

// DecryptBlock applies the decryption transformation D to the block b, which walks the schedule backwards:
//
//	D = G*[K_1] G[K_2] ... G[K_31] G[K_32]
func DecryptBlock(b uint64, s *Schedule) uint64 {
	b1, b0 := uint32(b>>32), uint32(b)
	for i := Rounds - 1; i > 0; i-- {
		b1, b0 = FeistelStep(s[i], b1, b0)
	}
	return FeistelFinal(s[0], b1, b0)
}
