package vr4300

// execSpecial dispatches a SPECIAL-opcode instruction by its funct field.
// bus is threaded through even though no SPECIAL instruction currently
// touches memory, so that SYNC's eventual cache-control semantics (a
// documented Non-goal today) has somewhere to go without reshaping the
// dispatch table again.
func execSpecial(c *CPU, bus Bus, instr Instr) Outcome {
	switch instr.Funct() {
	case fnSLL:
		return execSLL(c, instr)
	case fnSRL:
		return execSRL(c, instr)
	case fnSRA:
		return execSRA(c, instr)
	case fnSLLV:
		return execSLLV(c, instr)
	case fnSRLV:
		return execSRLV(c, instr)
	case fnSRAV:
		return execSRAV(c, instr)
	case fnJR:
		return execJR(c, instr)
	case fnJALR:
		return execJALR(c, instr)
	case fnSYSCALL:
		return Exception(ExcSyscall)
	case fnBREAK:
		return Exception(ExcBreakpoint)
	case fnSYNC:
		return Happy()
	case fnMFHI:
		return execMFHI(c, instr)
	case fnMTHI:
		return execMTHI(c, instr)
	case fnMFLO:
		return execMFLO(c, instr)
	case fnMTLO:
		return execMTLO(c, instr)
	case fnDSLLV:
		return execDSLLV(c, instr)
	case fnDSRLV:
		return execDSRLV(c, instr)
	case fnDSRAV:
		return execDSRAV(c, instr)
	case fnMULT:
		return execMULT(c, instr)
	case fnMULTU:
		return execMULTU(c, instr)
	case fnDIV:
		return execDIV(c, instr)
	case fnDIVU:
		return execDIVU(c, instr)
	case fnDMULT:
		return execDMULT(c, instr)
	case fnDMULTU:
		return execDMULTU(c, instr)
	case fnDDIV:
		return execDDIV(c, instr)
	case fnDDIVU:
		return execDDIVU(c, instr)
	case fnADD:
		return execADD(c, instr)
	case fnADDU:
		return execADDU(c, instr)
	case fnSUB:
		return execSUB(c, instr)
	case fnSUBU:
		return execSUBU(c, instr)
	case fnAND:
		return execAND(c, instr)
	case fnOR:
		return execOR(c, instr)
	case fnXOR:
		return execXOR(c, instr)
	case fnNOR:
		return execNOR(c, instr)
	case fnSLT:
		return execSLT(c, instr)
	case fnSLTU:
		return execSLTU(c, instr)
	case fnDADD:
		return execDADD(c, instr)
	case fnDADDU:
		return execDADDU(c, instr)
	case fnDSUB:
		return execDSUB(c, instr)
	case fnDSUBU:
		return execDSUBU(c, instr)
	case fnTGE:
		return execTrap(c, instr, int64(c.GetReg64(instr.Rs())) >= int64(c.GetReg64(instr.Rt())))
	case fnTGEU:
		return execTrap(c, instr, c.GetReg64(instr.Rs()) >= c.GetReg64(instr.Rt()))
	case fnTLT:
		return execTrap(c, instr, int64(c.GetReg64(instr.Rs())) < int64(c.GetReg64(instr.Rt())))
	case fnTLTU:
		return execTrap(c, instr, c.GetReg64(instr.Rs()) < c.GetReg64(instr.Rt()))
	case fnTEQ:
		return execTrap(c, instr, c.GetReg64(instr.Rs()) == c.GetReg64(instr.Rt()))
	case fnTNE:
		return execTrap(c, instr, c.GetReg64(instr.Rs()) != c.GetReg64(instr.Rt()))
	case fnDSLL:
		return execDSLL(c, instr)
	case fnDSRL:
		return execDSRL(c, instr)
	case fnDSRA:
		return execDSRA(c, instr)
	case fnDSLL32:
		return execDSLL32(c, instr)
	case fnDSRL32:
		return execDSRL32(c, instr)
	case fnDSRA32:
		return execDSRA32(c, instr)
	default:
		return Exception(ExcReservedInstruction)
	}
}

// execJR: jump to rs, no link.
func execJR(c *CPU, instr Instr) Outcome {
	c.SetPendingBranch(c.GetReg64(instr.Rs()))
	return Happy()
}

// execJALR: jump to rs, linking PC+8 into rd (GPR 31 if rd is omitted by
// the assembler, but the field is honoured verbatim here).
func execJALR(c *CPU, instr Instr) Outcome {
	target := c.GetReg64(instr.Rs())
	c.SetReg64(instr.Rd(), c.PC()+8)
	c.SetPendingBranch(target)
	return Happy()
}
