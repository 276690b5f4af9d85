package vr4300

import (
	"encoding/binary"
	"testing"

	"vr4300/internal/bus"
)

// newTestSystem sizes memory to cover the whole 512 MiB physical window
// behind CKSEG1, so the reset PC (physical 0x1FC00000) is backed.
func newTestSystem(t *testing.T) (*CPU, *bus.FlatMemory) {
	t.Helper()
	return NewCPU(), bus.NewFlatMemory(0x2000_0000)
}

// bigEndianWord splits val into the 4 raw bytes FlatMemory stores, in the
// big-endian order the reset-state Config.BE=1 CPU expects to read back.
func bigEndianWord(val uint32) [4]byte {
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], val)
	return word
}

// storeInstrAt writes instr as a big-endian word at the physical address
// corresponding to vaddr under the reset CKSEG1 mapping.
func storeInstrAt(t *testing.T, mem *bus.FlatMemory, vaddr uint64, instr Instr) {
	t.Helper()
	paddr := uint32(vaddr - 0xFFFF_FFFF_A000_0000)
	if !mem.WriteWord(paddr, bigEndianWord(uint32(instr))) {
		t.Fatalf("failed to seed instruction at %#x", vaddr)
	}
}

func TestScenarioS1_LUIThenADDIUBuildsConstant(t *testing.T) {
	c, mem := newTestSystem(t)
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0000, encodeI(opLUI, 0, 2, 0x1234))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0004, encodeI(opADDIU, 2, 2, 0xFFFF))

	for i := 0; i < 2; i++ {
		if out := StepForward(c, mem); !out.IsHappy() {
			t.Fatalf("step %d: %v", i, out)
		}
	}

	if got := c.GetReg64(2); got != 0x0000_0000_1233_FFFF {
		t.Errorf("v0 = %#x, want 0x1233ffff (bit 31 clear, so sign-extension adds no ones)", got)
	}
	if c.PC() != 0xFFFF_FFFF_BFC0_0008 {
		t.Errorf("PC = %#x, want 0xffffffffbfc00008", c.PC())
	}
}

func TestScenarioS2_TakenBranchWithDelaySlot(t *testing.T) {
	c, mem := newTestSystem(t)
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0000, encodeI(opBEQ, 0, 0, 2))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0004, encodeI(opORI, 0, 8, 0x1111))

	for i := 0; i < 3; i++ {
		if out := StepForward(c, mem); !out.IsHappy() {
			t.Fatalf("step %d: %v", i, out)
		}
	}

	if got := c.GetReg64(8); got != 0x1111 {
		t.Errorf("t0 = %#x, want 0x1111", got)
	}
	want := uint64(0xFFFF_FFFF_BFC0_0004 + 2*4 + 4)
	if c.PC() != want {
		t.Errorf("PC = %#x, want %#x", c.PC(), want)
	}
}

func TestScenarioS3_LikelyBranchNotTakenNullifiesDelaySlot(t *testing.T) {
	c, mem := newTestSystem(t)
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0000, encodeI(opBNEL, 0, 0, 2))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0004, encodeI(opORI, 0, 8, 0xDEAD))

	if out := StepForward(c, mem); !out.IsHappy() {
		t.Fatalf("step: %v", out)
	}

	if got := c.GetReg64(8); got != 0 {
		t.Errorf("t0 = %#x, want 0 (delay slot nullified)", got)
	}
	if c.PC() != 0xFFFF_FFFF_BFC0_0008 {
		t.Errorf("PC = %#x, want 0xffffffffbfc00008", c.PC())
	}
}

func TestScenarioS4_MTC0ToStatus(t *testing.T) {
	c, mem := newTestSystem(t)
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0000, encodeI(opLUI, 0, 8, 0x0000))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0004, encodeI(opORI, 8, 8, 0x00E0))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0008, encodeR(opCOP0, copMT, 8, Cop0Status, 0, 0))

	for i := 0; i < 3; i++ {
		if out := StepForward(c, mem); !out.IsHappy() {
			t.Fatalf("step %d: %v", i, out)
		}
	}

	if got := c.Cop0().ReadStatus(); got != 0x0000_00E0 {
		t.Errorf("Status = %#x, want 0xe0", got)
	}
	if !c.Cop0().kx() || !c.Cop0().sx() || !c.Cop0().ux() {
		t.Error("KX/SX/UX should all be set by Status = 0xe0")
	}
}

func TestScenarioS5_LWRoundTripsEndianness(t *testing.T) {
	c, mem := newTestSystem(t)
	mem.WriteWord(0x0000_1000, bigEndianWord(0xDEAD_BEEF))

	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0000, encodeI(opADDIU, 0, 8, 0x1000))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0004, encodeI(opLUI, 0, 9, 0xA000))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0008, encodeR(opSPECIAL, 8, 9, 10, 0, fnOR))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_000C, encodeI(opLW, 10, 2, 0))

	for i := 0; i < 4; i++ {
		if out := StepForward(c, mem); !out.IsHappy() {
			t.Fatalf("step %d: %v", i, out)
		}
	}

	if got := c.GetReg64(2); got != 0xFFFF_FFFF_DEAD_BEEF {
		t.Errorf("v0 = %#x, want 0xffffffffdeadbeef", got)
	}
}

func TestScenarioS6_32BitModeSignExtension(t *testing.T) {
	c, mem := newTestSystem(t)
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0000, encodeI(opADDIU, 0, 8, 0xFFFF))
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0004, encodeR(opSPECIAL, 0, 8, 9, 0, fnSLL))

	for i := 0; i < 2; i++ {
		if out := StepForward(c, mem); !out.IsHappy() {
			t.Fatalf("step %d: %v", i, out)
		}
	}

	if c.GetReg64(8) != 0xFFFF_FFFF_FFFF_FFFF {
		t.Errorf("t0 = %#x, want all-ones", c.GetReg64(8))
	}
	if c.GetReg64(9) != 0xFFFF_FFFF_FFFF_FFFF {
		t.Errorf("t1 = %#x, want all-ones", c.GetReg64(9))
	}
}

func TestBoundary_ADDOverflowTrapsAndDoesNotWrite(t *testing.T) {
	c := NewCPU()
	c.SetReg32(8, 0x7FFF_FFFF)
	c.SetReg32(9, 0x7FFF_FFFF)
	instr := encodeR(opSPECIAL, 8, 9, 10, 0, fnADD)

	out := Execute(c, nil, instr)
	if !out.IsException() || out.ExcCode() != ExcIntegerOverflow {
		t.Fatalf("Execute(ADD overflow) = %v, want ExcIntegerOverflow", out)
	}
	if c.GetReg64(10) != 0 {
		t.Error("rd must not be written when ADD overflows")
	}
}

func TestBoundary_ADDUNeverTraps(t *testing.T) {
	c := NewCPU()
	c.SetReg32(8, 0x7FFF_FFFF)
	c.SetReg32(9, 0x7FFF_FFFF)
	instr := encodeR(opSPECIAL, 8, 9, 10, 0, fnADDU)

	out := Execute(c, nil, instr)
	if !out.IsHappy() {
		t.Fatalf("Execute(ADDU) = %v, want Happy", out)
	}
	if got := c.GetReg64(10); got != 0xFFFF_FFFF_FFFF_FFFE {
		t.Errorf("rd = %#x, want 0xfffffffffffffffe", got)
	}
}

func TestBoundary_DIVByZeroLeavesHiLoUnchanged(t *testing.T) {
	c := NewCPU()
	c.SetHI64(0x1111)
	c.SetLO64(0x2222)
	c.SetReg32(8, 10)
	c.SetReg32(9, 0)
	instr := encodeR(opSPECIAL, 8, 9, 0, 0, fnDIV)

	out := Execute(c, nil, instr)
	if !out.IsHappy() {
		t.Fatalf("Execute(DIV by zero) = %v, want Happy", out)
	}
	if c.GetHI64() != 0x1111 || c.GetLO64() != 0x2222 {
		t.Error("DIV by zero must leave HI/LO unchanged")
	}
}

func TestBoundary_UnknownPrimaryOpcodeIsException(t *testing.T) {
	c := NewCPU()
	instr := Instr(uint32(0x3F) << 26) // 0o77 is a defined opcode (SD); pick a genuinely unassigned one instead
	instr = Instr(uint32(0x12) << 26)  // opCOP2 is assigned; use a gap in the primary table
	instr = encodeJ(0o23, 0)           // 0o23: unassigned primary opcode

	out := Execute(c, nil, instr)
	if !out.IsException() || out.ExcCode() != ExcReservedInstruction {
		t.Fatalf("Execute(unknown opcode) = %v, want ExcReservedInstruction", out)
	}
	if out.IsBug() {
		t.Error("unknown primary opcode must surface as Exception, never Bug")
	}
}

func TestDwordGateRejectsOutsideKernelAnd32Bit(t *testing.T) {
	c := NewCPU()
	c.cop0.status = uint32(2) << statusKSU // User mode, all width bits clear
	instr := encodeR(opSPECIAL, 8, 9, 10, 0, fnDADD)

	out := Execute(c, nil, instr)
	if !out.IsException() || out.ExcCode() != ExcReservedInstruction {
		t.Fatalf("Execute(DADD outside 64-bit/Kernel) = %v, want ExcReservedInstruction", out)
	}
}

func TestDwordGateAllowsKernelMode(t *testing.T) {
	c := NewCPU() // reset state is Kernel mode (ERL=1)
	c.SetReg64(8, 1)
	c.SetReg64(9, 2)
	instr := encodeR(opSPECIAL, 8, 9, 10, 0, fnDADD)

	out := Execute(c, nil, instr)
	if !out.IsHappy() {
		t.Fatalf("Execute(DADD in Kernel) = %v, want Happy", out)
	}
	if c.GetReg64(10) != 3 {
		t.Errorf("rd = %d, want 3", c.GetReg64(10))
	}
}

func TestSRLVMasksFiveBitsNotSix(t *testing.T) {
	c := NewCPU()
	c.SetReg32(9, -0x8000_0000)
	c.SetReg64(8, 0x20) // shift amount 0x20: bit 5 set, low 5 bits all zero
	instr := encodeR(opSPECIAL, 8, 9, 10, 0, fnSRLV)

	out := Execute(c, nil, instr)
	if !out.IsHappy() {
		t.Fatalf("Execute(SRLV) = %v, want Happy", out)
	}
	// A 6-bit mask would use shift amount 0x20 (32), which is out of range for
	// a 32-bit logical shift; a 5-bit mask treats it as shift amount 0 and
	// leaves rt unchanged.
	if got := c.GetReg64(10); got != 0xFFFF_FFFF_8000_0000 {
		t.Errorf("rd = %#x, want rt unchanged by a zero shift", got)
	}
}

func TestDIVUSetLoForwardsToLoNotHi(t *testing.T) {
	c := NewCPU()
	c.SetHI64(0xAAAA)
	c.SetReg64(8, 10)
	c.SetReg64(9, 3)
	instr := encodeR(opSPECIAL, 8, 9, 0, 0, fnDIVU)

	out := Execute(c, nil, instr)
	if !out.IsHappy() {
		t.Fatalf("Execute(DIVU) = %v, want Happy", out)
	}
	if c.GetLO64() != 3 {
		t.Errorf("LO = %d, want 3 (10/3)", c.GetLO64())
	}
	if c.GetHI64() != 1 {
		t.Errorf("HI = %d, want 1 (10%%3)", c.GetHI64())
	}
}

// TestDIVUSignExtendsResult exercises the case TestDIVUSetLoForwardsToLoNotHi
// can't: an operand with bit 31 set. DIVU is part of the 32-bit family, so
// its quotient/remainder must go through the sign-extending setters, not a
// verbatim 64-bit write.
func TestDIVUSignExtendsResult(t *testing.T) {
	c := NewCPU()
	c.SetReg32(8, -1) // 0xFFFFFFFF as a raw 32-bit pattern
	c.SetReg32(9, 1)
	instr := encodeR(opSPECIAL, 8, 9, 0, 0, fnDIVU)

	out := Execute(c, nil, instr)
	if !out.IsHappy() {
		t.Fatalf("Execute(DIVU) = %v, want Happy", out)
	}
	if c.GetLO64() != 0xFFFF_FFFF_FFFF_FFFF {
		t.Errorf("LO = %#x, want 0xffffffffffffffff (sign-extended 0xffffffff)", c.GetLO64())
	}
	if c.GetHI64() != 0 {
		t.Errorf("HI = %#x, want 0 (0xffffffff %% 1)", c.GetHI64())
	}
}

// TestStepForwardDoesNotAdvancePCOnException: §4.5 step 4 requires that when
// dispatch returns Exception, StepForward leaves PC and the pending-branch
// slot untouched and still reports Happy to its caller.
func TestStepForwardDoesNotAdvancePCOnException(t *testing.T) {
	c, mem := newTestSystem(t)
	c.SetReg32(8, 0x7FFF_FFFF)
	c.SetReg32(9, 0x7FFF_FFFF)
	storeInstrAt(t, mem, 0xFFFF_FFFF_BFC0_0000, encodeR(opSPECIAL, 8, 9, 10, 0, fnADD))

	pcBefore := c.PC()
	out := StepForward(c, mem)
	if !out.IsHappy() {
		t.Fatalf("StepForward(ADD overflow) = %v, want Happy", out)
	}
	if c.PC() != pcBefore {
		t.Errorf("PC = %#x, want unchanged %#x (exception must not advance PC)", c.PC(), pcBefore)
	}
	if c.GetReg64(10) != 0 {
		t.Error("rd must not be written when the overflowing ADD raised an exception")
	}
}

// TestFetchRejectsCachedSegment: CKSEG0 is cached by default (Config.K0's
// reset value), and this pass models uncached bus traffic only, so a fetch
// from CKSEG0 must report Bug rather than silently reading through.
func TestFetchRejectsCachedSegment(t *testing.T) {
	c, mem := newTestSystem(t)
	c.SetPC(0xFFFF_FFFF_8000_0000) // CKSEG0 base, cached by reset-state Config.K0
	storeInstrAt(t, mem, 0xFFFF_FFFF_A000_0000, encodeI(opORI, 0, 0, 0))

	out := StepForward(c, mem)
	if !out.IsBug() {
		t.Fatalf("StepForward(CKSEG0 fetch) = %v, want Bug", out)
	}
}

// TestMFC0AlwaysBug: MFC0 is named alongside DMFC0/DMTC0/CFC0/CTC0 as always
// returning Bug, even for a register (Status) MTC0 fully implements.
func TestMFC0AlwaysBug(t *testing.T) {
	c := NewCPU()
	instr := encodeR(opCOP0, copMF, 8, Cop0Status, 0, 0)

	out := Execute(c, nil, instr)
	if !out.IsBug() {
		t.Fatalf("Execute(MFC0) = %v, want Bug", out)
	}
}

// TestMFHINaturalWidthTruncatesInKernel32Bit: in Kernel mode with KX clear,
// DMULT is still reachable (gateDword permits Kernel regardless of KX) and
// can leave HI holding a value wider than 32 bits. A natural-width MFHI in
// that mode must truncate and re-sign-extend it, not expose it verbatim.
func TestMFHINaturalWidthTruncatesInKernel32Bit(t *testing.T) {
	c := NewCPU() // reset state: Kernel mode, KX/SX/UX all clear
	c.SetHI64(0x0000_0001_8000_0000)
	instr := encodeR(opSPECIAL, 0, 0, 8, 0, fnMFHI)

	out := Execute(c, nil, instr)
	if !out.IsHappy() {
		t.Fatalf("Execute(MFHI) = %v, want Happy", out)
	}
	if got, want := c.GetReg64(8), uint64(0xFFFF_FFFF_8000_0000); got != want {
		t.Errorf("t0 = %#x, want %#x (low 32 bits sign-extended)", got, want)
	}
}
