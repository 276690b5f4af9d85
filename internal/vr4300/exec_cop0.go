package vr4300

// execCop0 dispatches a COP0-opcode instruction by its rs field. A CP0
// access while Status.CU0 == 0 and the CPU isn't in Kernel mode is an
// unimplemented Coprocessor Unusable path in this pass — reported as Bug,
// not as the architected exception, since nothing here raises it yet.
func execCop0(c *CPU, instr Instr) Outcome {
	if c.Mode() != ModeKernel && !c.cop0.CU0() {
		return Bug("cop0: coprocessor-unusable exception not implemented")
	}

	switch instr.Rs() {
	case copMF:
		return execMFC0(c, instr)
	case copMT:
		return execMTC0(c, instr)
	case copDMF, copDMT, copCF, copCT:
		return Bug("cop0: 64-bit/control move variants not implemented")
	case copBC:
		return Bug("cop0: BC0 condition branches not implemented")
	default:
		return execCop0Funct(c, instr)
	}
}

// execMFC0 is not implemented in this pass: MFC0 is named alongside
// DMFC0/DMTC0/CFC0/CTC0 as returning Bug unconditionally, not just for
// registers Cop0.Read doesn't model.
func execMFC0(c *CPU, instr Instr) Outcome {
	return Bug("cop0: mfc0 not implemented")
}

// execMTC0: CP0[rd] = low 32 bits of rt. Only Status and Config have
// defined semantics for every bit pattern; writing any other register is
// reported as a Bug rather than silently accepted, since this core does
// not yet model what that register controls (TLB entries, Count/Compare
// timer interrupts, watchpoints, ...).
func execMTC0(c *CPU, instr Instr) Outcome {
	switch int(instr.Rd()) {
	case Cop0Status, Cop0Config:
		c.cop0.Write(int(instr.Rd()), uint32(c.GetReg64(instr.Rt())))
		return Happy()
	default:
		return Bug("mtc0: register not implemented")
	}
}

// execCop0Funct handles the rs == 0o20 sub-group (TLB maintenance and
// ERET), selected by the funct field rather than rs/rt. None of it is
// implemented yet: a static-segments-only core has no TLB to maintain and
// no exception handler to return from.
func execCop0Funct(c *CPU, instr Instr) Outcome {
	switch instr.Funct() {
	case copFunctTLBR, copFunctTLBWI, copFunctTLBWR, copFunctTLBP:
		return Bug("cop0: TLB maintenance instructions not implemented")
	case copFunctERET:
		return Bug("cop0: ERET not implemented")
	default:
		return Exception(ExcReservedInstruction)
	}
}
