package vr4300

// execMULT: HI:LO = rs * rt, signed 32-bit operands producing a 64-bit
// product split across HI/LO, each sign-extended per the 32-bit-mode
// invariant — both halves go through the 32-bit setters, never SetHI64/
// SetLO64, which are reserved for the 64-bit multiply/divide family.
func execMULT(c *CPU, instr Instr) Outcome {
	a := int64(int32(c.GetReg32(instr.Rs())))
	b := int64(int32(c.GetReg32(instr.Rt())))
	product := a * b
	c.SetLO32(int32(uint32(product)))
	c.SetHI32(int32(uint32(product >> 32)))
	return Happy()
}

// execMULTU: unsigned counterpart of MULT.
func execMULTU(c *CPU, instr Instr) Outcome {
	a := uint64(uint32(c.GetReg32(instr.Rs())))
	b := uint64(uint32(c.GetReg32(instr.Rt())))
	product := a * b
	c.SetLO32(int32(uint32(product)))
	c.SetHI32(int32(uint32(product >> 32)))
	return Happy()
}

// execDIV: LO = rs / rt, HI = rs % rt, signed 32-bit. Division by zero
// leaves HI/LO holding architecturally undefined values; this models that
// as a no-op rather than guessing at VR4300's exact undefined behaviour.
func execDIV(c *CPU, instr Instr) Outcome {
	a := int32(c.GetReg32(instr.Rs()))
	b := int32(c.GetReg32(instr.Rt()))
	if b == 0 {
		return Happy()
	}
	// The one pair (a, b) for which a/b overflows a 32-bit signed result
	// (MinInt32 / -1) is left to wrap, matching the hardware's silent
	// truncation rather than trapping — DIV never raises ExcIntegerOverflow.
	c.SetLO32(a / b)
	c.SetHI32(a % b)
	return Happy()
}

// execDIVU: unsigned counterpart of DIV.
func execDIVU(c *CPU, instr Instr) Outcome {
	a := uint32(c.GetReg32(instr.Rs()))
	b := uint32(c.GetReg32(instr.Rt()))
	if b == 0 {
		return Happy()
	}
	// The quotient must go to the 32-bit LO setter (SetLO32, which
	// sign-extends per the mode-32 invariant) and never to SetHI32 — an
	// earlier revision of this handler swapped the two and silently
	// corrupted HI on every unsigned divide. It also must not skip
	// sign-extension by writing through SetLO64/SetHI64 directly, which
	// would leave a result like 0xFFFFFFFF sitting as 0x00000000FFFFFFFF
	// instead of the canonical 0xFFFFFFFFFFFFFFFF.
	c.SetLO32(int32(a / b))
	c.SetHI32(int32(a % b))
	return Happy()
}

// execDMULT: 128-bit signed product of two 64-bit operands, split verbatim
// across HI:LO with no sign-extension narrowing (the 64-bit family writes
// through SetHI64/SetLO64, not the 32-bit setters).
func execDMULT(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	a := int64(c.GetReg64(instr.Rs()))
	b := int64(c.GetReg64(instr.Rt()))
	hi, lo := mul128(a, b)
	c.SetHI64(hi)
	c.SetLO64(lo)
	return Happy()
}

// execDMULTU: unsigned counterpart of DMULT.
func execDMULTU(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	a := c.GetReg64(instr.Rs())
	b := c.GetReg64(instr.Rt())
	hi, lo := mul128u(a, b)
	c.SetHI64(hi)
	c.SetLO64(lo)
	return Happy()
}

// execDDIV: LO = rs / rt, HI = rs % rt, signed 64-bit.
func execDDIV(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	a := int64(c.GetReg64(instr.Rs()))
	b := int64(c.GetReg64(instr.Rt()))
	if b == 0 {
		return Happy()
	}
	c.SetLO64(uint64(a / b))
	c.SetHI64(uint64(a % b))
	return Happy()
}

// execDDIVU: unsigned counterpart of DDIV.
func execDDIVU(c *CPU, instr Instr) Outcome {
	if out := gateDword(c); !out.IsHappy() {
		return out
	}
	a := c.GetReg64(instr.Rs())
	b := c.GetReg64(instr.Rt())
	if b == 0 {
		return Happy()
	}
	c.SetLO64(a / b)
	c.SetHI64(a % b)
	return Happy()
}

// execMFHI/execMFLO move HI/LO to a GPR at the CPU's natural width, not
// verbatim 64-bit: in Kernel 32-bit mode HI/LO can still hold a wide value
// left by DMULT/DDIV (gateDword permits those in Kernel regardless of KX),
// and a 32-bit-mode MFHI/MFLO must truncate and re-sign-extend rather than
// expose it.
func execMFHI(c *CPU, instr Instr) Outcome {
	c.SetRegNatural(instr.Rd(), c.GetHINatural())
	return Happy()
}

func execMFLO(c *CPU, instr Instr) Outcome {
	c.SetRegNatural(instr.Rd(), c.GetLONatural())
	return Happy()
}

func execMTHI(c *CPU, instr Instr) Outcome {
	c.SetHINatural(c.GetRegNatural(instr.Rs()))
	return Happy()
}

func execMTLO(c *CPU, instr Instr) Outcome {
	c.SetLONatural(c.GetRegNatural(instr.Rs()))
	return Happy()
}

// mul128 computes the signed 128-bit product of a and b as (hi, lo) 64-bit
// halves, via unsigned multiplication plus a sign correction.
func mul128(a, b int64) (hi, lo uint64) {
	hi, lo = mul128u(uint64(a), uint64(b))
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return hi, lo
}

// mul128u computes the unsigned 128-bit product of a and b as (hi, lo)
// 64-bit halves, via the standard schoolbook split into 32-bit limbs.
func mul128u(a, b uint64) (hi, lo uint64) {
	const mask32 = 0xFFFF_FFFF
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	t := aLo * bLo
	w0 := t & mask32
	k := t >> 32

	t = aHi*bLo + k
	w1 := t & mask32
	w2 := t >> 32

	t = aLo*bHi + w1
	k = t >> 32

	lo = (t << 32) | w0
	hi = aHi*bHi + w2 + k
	return hi, lo
}
