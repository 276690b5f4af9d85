package vr4300

import "vr4300/internal/utils"

// execADD: rd = rs + rt (32-bit), trapping on signed overflow.
func execADD(c *CPU, instr Instr) Outcome {
	a, b := int32(c.GetReg32(instr.Rs())), int32(c.GetReg32(instr.Rt()))
	sum := a + b
	if utils.CheckAdditionOverflow(a, b, sum) {
		return Exception(ExcIntegerOverflow)
	}
	c.SetReg32(instr.Rd(), sum)
	return Happy()
}

// execADDU: rd = rs + rt (32-bit), never traps.
func execADDU(c *CPU, instr Instr) Outcome {
	a, b := int32(c.GetReg32(instr.Rs())), int32(c.GetReg32(instr.Rt()))
	c.SetReg32(instr.Rd(), a+b)
	return Happy()
}

// execSUB: rd = rs - rt (32-bit), trapping on signed overflow.
func execSUB(c *CPU, instr Instr) Outcome {
	a, b := int32(c.GetReg32(instr.Rs())), int32(c.GetReg32(instr.Rt()))
	diff := a - b
	if utils.CheckSubtractionOverflow(a, b, diff) {
		return Exception(ExcIntegerOverflow)
	}
	c.SetReg32(instr.Rd(), diff)
	return Happy()
}

// execSUBU: rd = rs - rt (32-bit), never traps.
func execSUBU(c *CPU, instr Instr) Outcome {
	a, b := int32(c.GetReg32(instr.Rs())), int32(c.GetReg32(instr.Rt()))
	c.SetReg32(instr.Rd(), a-b)
	return Happy()
}

// execAND/execOR/execXOR/execNOR operate on the full 64-bit register value;
// unlike the arithmetic family they have no 32-bit-specific form.
func execAND(c *CPU, instr Instr) Outcome {
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rs())&c.GetReg64(instr.Rt()))
	return Happy()
}

func execOR(c *CPU, instr Instr) Outcome {
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rs())|c.GetReg64(instr.Rt()))
	return Happy()
}

func execXOR(c *CPU, instr Instr) Outcome {
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rs())^c.GetReg64(instr.Rt()))
	return Happy()
}

func execNOR(c *CPU, instr Instr) Outcome {
	c.SetReg64(instr.Rd(), ^(c.GetReg64(instr.Rs()) | c.GetReg64(instr.Rt())))
	return Happy()
}

// execSLT/execSLTU: rd = 1 if rs < rt else 0, compared as signed/unsigned
// full 64-bit values respectively.
func execSLT(c *CPU, instr Instr) Outcome {
	if int64(c.GetReg64(instr.Rs())) < int64(c.GetReg64(instr.Rt())) {
		c.SetReg64(instr.Rd(), 1)
	} else {
		c.SetReg64(instr.Rd(), 0)
	}
	return Happy()
}

func execSLTU(c *CPU, instr Instr) Outcome {
	if c.GetReg64(instr.Rs()) < c.GetReg64(instr.Rt()) {
		c.SetReg64(instr.Rd(), 1)
	} else {
		c.SetReg64(instr.Rd(), 0)
	}
	return Happy()
}

// execDADD/execDADDU/execDSUB/execDSUBU are the 64-bit counterparts of
// ADD/ADDU/SUB/SUBU; DADD/DSUB still trap on signed overflow. Each passes
// through the dword-operation gate before touching any state.
func execDADD(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	a, b := int64(c.GetReg64(instr.Rs())), int64(c.GetReg64(instr.Rt()))
	sum := a + b
	if utils.CheckAdditionOverflow(a, b, sum) {
		return Exception(ExcIntegerOverflow)
	}
	c.SetReg64(instr.Rd(), uint64(sum))
	return Happy()
}

func execDADDU(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rs())+c.GetReg64(instr.Rt()))
	return Happy()
}

func execDSUB(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	a, b := int64(c.GetReg64(instr.Rs())), int64(c.GetReg64(instr.Rt()))
	diff := a - b
	if utils.CheckSubtractionOverflow(a, b, diff) {
		return Exception(ExcIntegerOverflow)
	}
	c.SetReg64(instr.Rd(), uint64(diff))
	return Happy()
}

func execDSUBU(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rd(), c.GetReg64(instr.Rs())-c.GetReg64(instr.Rt()))
	return Happy()
}

// execADDI: rt = rs + sext16(imm) (32-bit), trapping on signed overflow.
func execADDI(c *CPU, instr Instr) Outcome {
	a := int32(c.GetReg32(instr.Rs()))
	b := int32(instr.ImmS())
	sum := a + b
	if utils.CheckAdditionOverflow(a, b, sum) {
		return Exception(ExcIntegerOverflow)
	}
	c.SetReg32(instr.Rt(), sum)
	return Happy()
}

// execADDIU: rt = rs + sext16(imm) (32-bit), never traps despite the "U" —
// the VR4300 manual's naming is historical, not semantic.
func execADDIU(c *CPU, instr Instr) Outcome {
	c.SetReg32(instr.Rt(), int32(c.GetReg32(instr.Rs()))+int32(instr.ImmS()))
	return Happy()
}

func execSLTI(c *CPU, instr Instr) Outcome {
	if int64(c.GetReg64(instr.Rs())) < instr.ImmS() {
		c.SetReg64(instr.Rt(), 1)
	} else {
		c.SetReg64(instr.Rt(), 0)
	}
	return Happy()
}

func execSLTIU(c *CPU, instr Instr) Outcome {
	if c.GetReg64(instr.Rs()) < uint64(instr.ImmS()) {
		c.SetReg64(instr.Rt(), 1)
	} else {
		c.SetReg64(instr.Rt(), 0)
	}
	return Happy()
}

// execANDI/execORI/execXORI use the zero-extended immediate, unlike the
// arithmetic I-type family.
func execANDI(c *CPU, instr Instr) Outcome {
	c.SetReg64(instr.Rt(), c.GetReg64(instr.Rs())&uint64(instr.ImmU()))
	return Happy()
}

func execORI(c *CPU, instr Instr) Outcome {
	c.SetReg64(instr.Rt(), c.GetReg64(instr.Rs())|uint64(instr.ImmU()))
	return Happy()
}

func execXORI(c *CPU, instr Instr) Outcome {
	c.SetReg64(instr.Rt(), c.GetReg64(instr.Rs())^uint64(instr.ImmU()))
	return Happy()
}

// execLUI: rt = imm << 16, sign-extended to 64 bits as a 32-bit result.
func execLUI(c *CPU, instr Instr) Outcome {
	c.SetReg32(instr.Rt(), int32(uint32(instr.ImmU())<<16))
	return Happy()
}

func execDADDI(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	a, b := int64(c.GetReg64(instr.Rs())), instr.ImmS()
	sum := a + b
	if utils.CheckAdditionOverflow(a, b, sum) {
		return Exception(ExcIntegerOverflow)
	}
	c.SetReg64(instr.Rt(), uint64(sum))
	return Happy()
}

func execDADDIU(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	c.SetReg64(instr.Rt(), c.GetReg64(instr.Rs())+uint64(instr.ImmS()))
	return Happy()
}
