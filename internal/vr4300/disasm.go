package vr4300

import (
	"fmt"
	"io"
)

// gpRegName renders a general-purpose register index in the MIPS ABI
// names (zr, at, v0-v1, a0-a3, t0-t9, s0-s7, k0-k1, gp, sp, fp, ra).
func gpRegName(r uint8) string {
	switch {
	case r == 0:
		return "zr"
	case r == 1:
		return "at"
	case r == 2 || r == 3:
		return fmt.Sprintf("v%d", r-2)
	case r >= 4 && r <= 7:
		return fmt.Sprintf("a%d", r-4)
	case r >= 8 && r <= 15:
		return fmt.Sprintf("t%d", r-8)
	case r >= 16 && r <= 23:
		return fmt.Sprintf("s%d", r-16)
	case r == 24 || r == 25:
		return fmt.Sprintf("t%d", r-16)
	case r == 26 || r == 27:
		return fmt.Sprintf("k%d", r-26)
	case r == 28:
		return "gp"
	case r == 29:
		return "sp"
	case r == 30:
		return "fp"
	case r == 31:
		return "ra"
	default:
		panic("vr4300: register index out of range")
	}
}

// DisassembleTo writes instr's disassembly to w, followed by a newline.
// It is the writer-sink counterpart of Disassemble for callers streaming a
// run of instructions (e.g. a trace or a bulk disassembly listing) without
// building an intermediate string per instruction.
func DisassembleTo(w io.Writer, instr Instr) error {
	_, err := fmt.Fprintln(w, Disassemble(instr))
	return err
}

// Disassemble renders the canonical MIPS III textual form of instr. Unknown
// encodings, at any decode level, are rendered as "? 0oOCT" rather than
// rejected, matching the interpreter's own policy of never panicking on
// unrecognised bit patterns.
func Disassemble(instr Instr) string {
	switch instr.Opcode() {
	case opSPECIAL:
		return disasmSpecial(instr)
	case opREGIMM:
		return disasmRegimm(instr)
	case opJ:
		return jump("j", instr)
	case opJAL:
		return jump("jal", instr)
	case opBEQ:
		return branch2("beq", instr)
	case opBNE:
		return branch2("bne", instr)
	case opBLEZ:
		return branch1("blez", instr)
	case opBGTZ:
		return branch1("bgtz", instr)
	case opADDI:
		return regImm("addi", instr)
	case opADDIU:
		return regImm("addiu", instr)
	case opSLTI:
		return regImm("slti", instr)
	case opSLTIU:
		return regImm("sltiu", instr)
	case opANDI:
		return regImmU("andi", instr)
	case opORI:
		return regImmU("ori", instr)
	case opXORI:
		return regImmU("xori", instr)
	case opLUI:
		return fmt.Sprintf("lui %s, 0x%X", gpRegName(instr.Rt()), instr.ImmU())
	case opCOP0:
		return disasmCop("cop0", instr, 0)
	case opCOP1:
		return disasmCop("cop1", instr, 1)
	case opCOP2:
		return disasmCop("cop2", instr, 2)
	case opBEQL:
		return branch2("beql", instr)
	case opBNEL:
		return branch2("bnel", instr)
	case opBLEZL:
		return branch1("blezl", instr)
	case opBGTZL:
		return branch1("bgtzl", instr)
	case opDADDI:
		return regImm("daddi", instr)
	case opDADDIU:
		return regImm("daddiu", instr)
	case opLDL:
		return loadStore("ldl", instr)
	case opLDR:
		return loadStore("ldr", instr)
	case opLB:
		return loadStore("lb", instr)
	case opLH:
		return loadStore("lh", instr)
	case opLWL:
		return loadStore("lwl", instr)
	case opLW:
		return loadStore("lw", instr)
	case opLBU:
		return loadStore("lbu", instr)
	case opLHU:
		return loadStore("lhu", instr)
	case opLWR:
		return loadStore("lwr", instr)
	case opLWU:
		return loadStore("lwu", instr)
	case opSB:
		return loadStore("sb", instr)
	case opSH:
		return loadStore("sh", instr)
	case opSWL:
		return loadStore("swl", instr)
	case opSW:
		return loadStore("sw", instr)
	case opSDL:
		return loadStore("sdl", instr)
	case opSDR:
		return loadStore("sdr", instr)
	case opSWR:
		return loadStore("swr", instr)
	case opLL:
		return loadStore("ll", instr)
	case opLWC1:
		return loadStore("lwc1", instr)
	case opLWC2:
		return loadStore("lwc2", instr)
	case opLLD:
		return loadStore("lld", instr)
	case opLDC1:
		return loadStore("ldc1", instr)
	case opLDC2:
		return loadStore("ldc2", instr)
	case opLD:
		return loadStore("ld", instr)
	case opSC:
		return loadStore("sc", instr)
	case opSWC1:
		return loadStore("swc1", instr)
	case opSWC2:
		return loadStore("swc2", instr)
	case opSCD:
		return loadStore("scd", instr)
	case opSDC1:
		return loadStore("sdc1", instr)
	case opSDC2:
		return loadStore("sdc2", instr)
	case opSD:
		return loadStore("sd", instr)
	default:
		return fmt.Sprintf("? 0o%o", instr.Opcode())
	}
}

func disasmSpecial(instr Instr) string {
	switch instr.Funct() {
	case fnSLL:
		if instr == 0 {
			return "nop"
		}
		return shift("sll", instr)
	case fnSRL:
		return shift("srl", instr)
	case fnSRA:
		return shift("sra", instr)
	case fnSLLV:
		return shiftV("sllv", instr)
	case fnSRLV:
		return shiftV("srlv", instr)
	case fnSRAV:
		return shiftV("srav", instr)
	case fnJR:
		return fmt.Sprintf("jr %s", gpRegName(instr.Rs()))
	case fnJALR:
		if instr.Rd() == 31 {
			return fmt.Sprintf("jalr %s", gpRegName(instr.Rs()))
		}
		return fmt.Sprintf("jalr %s, %s", gpRegName(instr.Rd()), gpRegName(instr.Rs()))
	case fnSYSCALL:
		return "syscall"
	case fnBREAK:
		return "break"
	case fnSYNC:
		return "sync"
	case fnMFHI:
		return fmt.Sprintf("mfhi %s", gpRegName(instr.Rd()))
	case fnMTHI:
		return fmt.Sprintf("mthi %s", gpRegName(instr.Rs()))
	case fnMFLO:
		return fmt.Sprintf("mflo %s", gpRegName(instr.Rd()))
	case fnMTLO:
		return fmt.Sprintf("mtlo %s", gpRegName(instr.Rs()))
	case fnDSLLV:
		return shiftV("dsllv", instr)
	case fnDSRLV:
		return shiftV("dsrlv", instr)
	case fnDSRAV:
		return shiftV("dsrav", instr)
	case fnMULT:
		return mulDiv("mult", instr)
	case fnMULTU:
		return mulDiv("multu", instr)
	case fnDIV:
		return mulDiv("div", instr)
	case fnDIVU:
		return mulDiv("divu", instr)
	case fnDMULT:
		return mulDiv("dmult", instr)
	case fnDMULTU:
		return mulDiv("dmultu", instr)
	case fnDDIV:
		return mulDiv("ddiv", instr)
	case fnDDIVU:
		return mulDiv("ddivu", instr)
	case fnADD:
		return threeReg("add", instr)
	case fnADDU:
		return threeReg("addu", instr)
	case fnSUB:
		return threeReg("sub", instr)
	case fnSUBU:
		return threeReg("subu", instr)
	case fnAND:
		return threeReg("and", instr)
	case fnOR:
		return threeReg("or", instr)
	case fnXOR:
		return threeReg("xor", instr)
	case fnNOR:
		return threeReg("nor", instr)
	case fnSLT:
		return threeReg("slt", instr)
	case fnSLTU:
		return threeReg("sltu", instr)
	case fnDADD:
		return threeReg("dadd", instr)
	case fnDADDU:
		return threeReg("daddu", instr)
	case fnDSUB:
		return threeReg("dsub", instr)
	case fnDSUBU:
		return threeReg("dsubu", instr)
	case fnTGE:
		return mulDiv("tge", instr)
	case fnTGEU:
		return mulDiv("tgeu", instr)
	case fnTLT:
		return mulDiv("tlt", instr)
	case fnTLTU:
		return mulDiv("tltu", instr)
	case fnTEQ:
		return mulDiv("teq", instr)
	case fnTNE:
		return mulDiv("tne", instr)
	case fnDSLL:
		return shift("dsll", instr)
	case fnDSRL:
		return shift("dsrl", instr)
	case fnDSRA:
		return shift("dsra", instr)
	case fnDSLL32:
		return shift("dsll32", instr)
	case fnDSRL32:
		return shift("dsrl32", instr)
	case fnDSRA32:
		return shift("dsra32", instr)
	default:
		return fmt.Sprintf("? 0o%o", instr.Funct())
	}
}

func disasmRegimm(instr Instr) string {
	switch instr.Rt() {
	case riBLTZ:
		return branch1("bltz", instr)
	case riBGEZ:
		return branch1("bgez", instr)
	case riBLTZL:
		return branch1("bltzl", instr)
	case riBGEZL:
		return branch1("bgezl", instr)
	case riTGEI:
		return trapImm("tgei", instr)
	case riTGEIU:
		return trapImm("tgeiu", instr)
	case riTLTI:
		return trapImm("tlti", instr)
	case riTLTIU:
		return trapImm("tltiu", instr)
	case riTEQI:
		return trapImm("teqi", instr)
	case riTNEI:
		return trapImm("tnei", instr)
	case riBLTZAL:
		return branch1("bltzal", instr)
	case riBGEZAL:
		return branch1("bgezal", instr)
	case riBLTZALL:
		return branch1("bltzall", instr)
	case riBGEZALL:
		return branch1("bgezall", instr)
	default:
		return fmt.Sprintf("? 0o%o", instr.Rt())
	}
}

func disasmCop(mnemonic string, instr Instr, z uint8) string {
	switch instr.Rs() {
	case copMF:
		return fmt.Sprintf("mfc%d %s, $%d", z, gpRegName(instr.Rt()), instr.Rd())
	case copDMF:
		return fmt.Sprintf("dmfc%d %s, $%d", z, gpRegName(instr.Rt()), instr.Rd())
	case copCF:
		return fmt.Sprintf("cfc%d %s, $%d", z, gpRegName(instr.Rt()), instr.Rd())
	case copMT:
		return fmt.Sprintf("mtc%d %s, $%d", z, gpRegName(instr.Rt()), instr.Rd())
	case copDMT:
		return fmt.Sprintf("dmtc%d %s, $%d", z, gpRegName(instr.Rt()), instr.Rd())
	case copCT:
		return fmt.Sprintf("ctc%d %s, $%d", z, gpRegName(instr.Rt()), instr.Rd())
	case copBC:
		switch instr.Rt() {
		case bcF:
			return fmt.Sprintf("bc%df 0x%X", z, instr.ImmU())
		case bcT:
			return fmt.Sprintf("bc%dt 0x%X", z, instr.ImmU())
		case bcFL:
			return fmt.Sprintf("bc%dfl 0x%X", z, instr.ImmU())
		case bcTL:
			return fmt.Sprintf("bc%dtl 0x%X", z, instr.ImmU())
		default:
			return fmt.Sprintf("? 0o%o", instr.Funct())
		}
	default:
		if z == 0 && instr.Funct() == copFunctERET {
			return "eret"
		}
		return fmt.Sprintf("%s.func 0o%o", mnemonic, instr.Funct())
	}
}

func threeReg(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, %s, %s", mnemonic, gpRegName(instr.Rd()), gpRegName(instr.Rs()), gpRegName(instr.Rt()))
}

func regImm(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, %s, 0x%X", mnemonic, gpRegName(instr.Rt()), gpRegName(instr.Rs()), instr.ImmU())
}

func regImmU(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, %s, 0x%X", mnemonic, gpRegName(instr.Rt()), gpRegName(instr.Rs()), instr.ImmU())
}

func loadStore(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, 0x%X(%s)", mnemonic, gpRegName(instr.Rt()), instr.ImmU(), gpRegName(instr.Rs()))
}

func shift(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, %s, %d", mnemonic, gpRegName(instr.Rd()), gpRegName(instr.Rt()), instr.Sa())
}

func shiftV(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, %s, %s", mnemonic, gpRegName(instr.Rd()), gpRegName(instr.Rt()), gpRegName(instr.Rs()))
}

func mulDiv(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, %s", mnemonic, gpRegName(instr.Rs()), gpRegName(instr.Rt()))
}

func trapImm(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, %d", mnemonic, gpRegName(instr.Rs()), instr.ImmS())
}

func branch2(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, %s, 0x%X", mnemonic, gpRegName(instr.Rs()), gpRegName(instr.Rt()), instr.ImmU())
}

func branch1(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s %s, 0x%X", mnemonic, gpRegName(instr.Rs()), instr.ImmU())
}

func jump(mnemonic string, instr Instr) string {
	return fmt.Sprintf("%s 0x%X", mnemonic, instr.Target()<<2)
}
