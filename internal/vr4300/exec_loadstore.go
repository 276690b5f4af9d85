package vr4300

// execLW: rt = sign-extend-32(mem32[rs + sext16(imm)]).
func execLW(c *CPU, bus Bus, instr Instr) Outcome {
	vaddr := uint64(int64(c.GetReg64(instr.Rs())) + instr.ImmS())
	word, out := loadWord(c, bus, vaddr)
	if !out.IsHappy() {
		return out
	}
	c.SetReg32(instr.Rt(), int32(word))
	return Happy()
}
