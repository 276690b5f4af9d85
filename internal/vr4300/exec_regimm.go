package vr4300

// execRegimm dispatches a REGIMM-opcode instruction (opcode == opREGIMM) by
// its rt field, which REGIMM overloads as a secondary opcode rather than a
// register number.
func execRegimm(c *CPU, instr Instr) Outcome {
	switch instr.Rt() {
	case riBLTZ:
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) < 0, false)
	case riBGEZ:
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) >= 0, false)
	case riBLTZL:
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) < 0, true)
	case riBGEZL:
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) >= 0, true)

	case riBLTZAL:
		c.SetReg64(31, c.PC()+8)
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) < 0, false)
	case riBGEZAL:
		c.SetReg64(31, c.PC()+8)
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) >= 0, false)
	case riBLTZALL:
		c.SetReg64(31, c.PC()+8)
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) < 0, true)
	case riBGEZALL:
		c.SetReg64(31, c.PC()+8)
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) >= 0, true)

	case riTGEI:
		return execTrapImm(c, instr, int64(c.GetReg64(instr.Rs())) >= instr.ImmS())
	case riTGEIU:
		return execTrapImm(c, instr, c.GetReg64(instr.Rs()) >= uint64(instr.ImmS()))
	case riTLTI:
		return execTrapImm(c, instr, int64(c.GetReg64(instr.Rs())) < instr.ImmS())
	case riTLTIU:
		return execTrapImm(c, instr, c.GetReg64(instr.Rs()) < uint64(instr.ImmS()))
	case riTEQI:
		return execTrapImm(c, instr, int64(c.GetReg64(instr.Rs())) == instr.ImmS())
	case riTNEI:
		return execTrapImm(c, instr, int64(c.GetReg64(instr.Rs())) != instr.ImmS())

	default:
		return Exception(ExcReservedInstruction)
	}
}
