package vr4300

// Execute dispatches a single decoded instruction word against cpu/bus and
// returns its Outcome. It never consumes the pending branch slot and leaves
// the normal PC+4 advance to StepForward; a taken branch or a jump calls
// cpu.SetPendingBranch, and the only direct PC change is the extra +4 a
// not-taken likely branch makes to skip its delay slot (see execBranch).
func Execute(c *CPU, bus Bus, instr Instr) Outcome {
	switch instr.Opcode() {
	case opSPECIAL:
		return execSpecial(c, bus, instr)
	case opREGIMM:
		return execRegimm(c, instr)

	case opJ:
		c.SetPendingBranch(jumpTargetFor(c.PC(), instr))
		return Happy()
	case opJAL:
		c.SetReg64(31, c.PC()+8)
		c.SetPendingBranch(jumpTargetFor(c.PC(), instr))
		return Happy()

	case opBEQ:
		return execBranch(c, instr, c.GetReg64(instr.Rs()) == c.GetReg64(instr.Rt()), false)
	case opBNE:
		return execBranch(c, instr, c.GetReg64(instr.Rs()) != c.GetReg64(instr.Rt()), false)
	case opBLEZ:
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) <= 0, false)
	case opBGTZ:
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) > 0, false)
	case opBEQL:
		return execBranch(c, instr, c.GetReg64(instr.Rs()) == c.GetReg64(instr.Rt()), true)
	case opBNEL:
		return execBranch(c, instr, c.GetReg64(instr.Rs()) != c.GetReg64(instr.Rt()), true)
	case opBLEZL:
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) <= 0, true)
	case opBGTZL:
		return execBranch(c, instr, int64(c.GetReg64(instr.Rs())) > 0, true)

	case opADDI:
		return execADDI(c, instr)
	case opADDIU:
		return execADDIU(c, instr)
	case opSLTI:
		return execSLTI(c, instr)
	case opSLTIU:
		return execSLTIU(c, instr)
	case opANDI:
		return execANDI(c, instr)
	case opORI:
		return execORI(c, instr)
	case opXORI:
		return execXORI(c, instr)
	case opLUI:
		return execLUI(c, instr)
	case opDADDI:
		return execDADDI(c, instr)
	case opDADDIU:
		return execDADDIU(c, instr)

	case opCOP0:
		return execCop0(c, instr)
	case opCOP1, opCOP2:
		return Bug("decode: coprocessor 1/2 instructions not implemented")

	case opLW:
		return execLW(c, bus, instr)

	case opLB, opLH, opLWL, opLBU, opLHU, opLWR, opLWU, opLDL, opLDR,
		opSB, opSH, opSWL, opSW, opSDL, opSDR, opSWR,
		opLL, opLWC1, opLWC2, opLLD, opLDC1, opLDC2, opLD,
		opSC, opSWC1, opSWC2, opSCD, opSDC1, opSDC2, opSD:
		return Bug("decode: opcode 0o" + octal(instr.Opcode()) + " recognized but not implemented")

	default:
		return Exception(ExcReservedInstruction)
	}
}

// execBranch implements the shared shape of BEQ/BNE/BLEZ/BGTZ and their
// "likely" variants: on taken, arm the pending branch at PC+4+offset*4,
// which the step driver consumes one step later (after the delay slot
// has executed). A not-taken likely branch must instead nullify its own
// delay slot within this very step — the pending-branch slot can't do
// that, since the driver snapshots it before dispatch runs, so any value
// armed here would only take effect next step, after the delay slot had
// already run. Bumping PC directly gets the driver's own PC+4 fall-through
// to land on PC+8 in one step, skipping the delay slot outright. A
// non-likely branch that isn't taken simply falls through as normal.
func execBranch(c *CPU, instr Instr, taken bool, likely bool) Outcome {
	if taken {
		c.SetPendingBranch(branchTargetFor(c.PC(), instr))
		return Happy()
	}
	if likely {
		c.SetPC(c.PC() + 4)
	}
	return Happy()
}

func octal(v uint8) string {
	if v == 0 {
		return "0"
	}
	digits := [3]byte{}
	n := 0
	for v > 0 {
		digits[n] = '0' + byte(v%8)
		v /= 8
		n++
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = digits[n-1-i]
	}
	return string(out)
}
