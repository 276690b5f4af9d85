package vr4300

// execSLL/execSRL/execSRA: rd = rt shifted by the fixed sa field (32-bit).
func execSLL(c *CPU, instr Instr) Outcome {
	c.SetReg32(instr.Rd(), int32(c.GetReg32(instr.Rt()))<<instr.Sa())
	return Happy()
}

func execSRL(c *CPU, instr Instr) Outcome {
	c.SetReg32(instr.Rd(), int32(uint32(c.GetReg32(instr.Rt()))>>instr.Sa()))
	return Happy()
}

func execSRA(c *CPU, instr Instr) Outcome {
	c.SetReg32(instr.Rd(), int32(c.GetReg32(instr.Rt()))>>instr.Sa())
	return Happy()
}

// execSLLV/execSRAV shift by the low 5 bits of rs (32-bit).
func execSLLV(c *CPU, instr Instr) Outcome {
	sh := uint(c.GetReg64(instr.Rs())) & 0x1F
	c.SetReg32(instr.Rd(), int32(c.GetReg32(instr.Rt()))<<sh)
	return Happy()
}

func execSRAV(c *CPU, instr Instr) Outcome {
	sh := uint(c.GetReg64(instr.Rs())) & 0x1F
	c.SetReg32(instr.Rd(), int32(c.GetReg32(instr.Rt()))>>sh)
	return Happy()
}

// execSRLV shifts by the low 5 bits of rs, not 6 — a 32-bit shift amount
// only ever needs 5 bits, and using 6 here would let bit 5 of rs silently
// select a shift amount no 32-bit SRL can actually produce.
func execSRLV(c *CPU, instr Instr) Outcome {
	sh := uint(c.GetReg64(instr.Rs())) & 0x1F
	c.SetReg32(instr.Rd(), int32(uint32(c.GetReg32(instr.Rt()))>>sh))
	return Happy()
}

// execDSLL/execDSRL/execDSRA: 64-bit shifts by the fixed sa field (0-31).
// Each passes through the dword-operation gate before touching any state.
func execDSLL(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rt())<<instr.Sa())
	return Happy()
}

func execDSRL(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rt())>>instr.Sa())
	return Happy()
}

func execDSRA(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rd(), uint64(int64(c.GetReg64(instr.Rt()))>>instr.Sa()))
	return Happy()
}

// execDSLL32/execDSRL32/execDSRA32: the same, with the encoded sa field
// biased by 32 so a single 5-bit field can reach shift amounts 32-63.
func execDSLL32(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rt())<<(uint(instr.Sa())+32))
	return Happy()
}

func execDSRL32(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rt())>>(uint(instr.Sa())+32))
	return Happy()
}

func execDSRA32(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rd(), uint64(int64(c.GetReg64(instr.Rt()))>>(uint(instr.Sa())+32)))
	return Happy()
}

// execDSLLV/execDSRLV/execDSRAV shift by the low 6 bits of rs (64-bit).
func execDSLLV(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	sh := uint(c.GetReg64(instr.Rs())) & 0x3F
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rt())<<sh)
	return Happy()
}

func execDSRLV(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	sh := uint(c.GetReg64(instr.Rs())) & 0x3F
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rt())>>sh)
	return Happy()
}

func execDSRAV(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	sh := uint(c.GetReg64(instr.Rs())) & 0x3F
	c.SetReg64(instr.Rd(), uint64(int64(c.GetReg64(instr.Rt()))>>sh))
	return Happy()
}
