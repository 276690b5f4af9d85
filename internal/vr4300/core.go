package vr4300

// CPU is the register-only state of a VR4300 core: the general-purpose
// register file, HI/LO, the program counter, the pending-branch slot that
// implements delay slots, and the CP0 coprocessor. CPU alone covers the
// register-only instructions; a Bus is additionally required for fetch and
// loads (see bus.go).
type CPU struct {
	gpr [32]uint64
	hi  uint64
	lo  uint64
	pc  uint64

	// branchTarget/hasBranch implement the single pending-branch slot: a
	// branch or jump handler sets this instead of PC directly, and
	// StepForward commits it after the delay-slot instruction has executed.
	branchTarget uint64
	hasBranch    bool

	cop0 *Cop0
}

// NewCPU returns a CPU with PC at the VR4300 reset vector and CP0 in reset
// state. GPRs, HI and LO are left at zero, matching real hardware's
// undefined-but-conventionally-zero power-on state closely enough for
// deterministic testing.
func NewCPU() *CPU {
	return &CPU{
		pc:   0xFFFF_FFFF_BFC0_0000,
		cop0: InitCop0(),
	}
}

// PC returns the program counter.
func (c *CPU) PC() uint64 { return c.pc }

// SetPC overwrites the program counter directly, bypassing the pending
// branch slot. Used by StepForward to commit the next PC, by the drivers to
// set the boot PC, and by a not-taken likely branch to skip its delay slot;
// taken branches and jumps go through SetPendingBranch instead.
func (c *CPU) SetPC(pc uint64) { c.pc = pc }

// Cop0 returns the CPU's coprocessor 0 register file.
func (c *CPU) Cop0() *Cop0 { return c.cop0 }

// GetReg64 returns the full 64-bit contents of GPR r. r0 always reads zero.
func (c *CPU) GetReg64(r uint8) uint64 {
	if r == 0 {
		return 0
	}
	return c.gpr[r]
}

// GetReg32 returns the low 32 bits of GPR r, sign-extended to 64 bits. In
// 32-bit mode every register is required to already hold a sign-extended
// value (see SetReg32), so this is equivalent to reading the natural width;
// the explicit truncate-then-extend keeps the invariant enforced even if a
// 64-bit-only handler ever wrote a non-canonical value.
func (c *CPU) GetReg32(r uint8) int64 {
	return int64(int32(uint32(c.GetReg64(r))))
}

// SetReg64 stores a full 64-bit value into GPR r. Writes to r0 are discarded.
func (c *CPU) SetReg64(r uint8, val uint64) {
	if r == 0 {
		return
	}
	c.gpr[r] = val
}

// SetReg32 stores val into GPR r, sign-extended to 64 bits, preserving the
// 32-bit-mode invariant that every register holds a canonical sign-extended
// 32-bit value. Writes to r0 are discarded.
func (c *CPU) SetReg32(r uint8, val int32) {
	c.SetReg64(r, uint64(int64(val)))
}

// GetHI64/GetLO64 return the full 64-bit HI/LO accumulator contents.
func (c *CPU) GetHI64() uint64 { return c.hi }
func (c *CPU) GetLO64() uint64 { return c.lo }

// SetHI64/SetLO64 store a 64-bit value into HI/LO verbatim, used by the
// 64-bit multiply/divide family (DMULT, DDIV, ...).
func (c *CPU) SetHI64(val uint64) { c.hi = val }
func (c *CPU) SetLO64(val uint64) { c.lo = val }

// SetHI32 stores val into HI, sign-extended to 64 bits.
func (c *CPU) SetHI32(val int32) { c.hi = uint64(int64(val)) }

// SetLO32 stores val into LO, sign-extended to 64 bits. Every 32-bit-result
// producer (MULT, MULTU, DIV, DIVU) must route its LO write through this
// setter, never through SetHI32 — see the DIV/DIVU handlers for the bug this
// guards against.
func (c *CPU) SetLO32(val int32) { c.lo = uint64(int64(val)) }

// GetRegNatural returns GPR r at the CPU's current operating width: the full
// 64 bits in 64-bit mode, or the sign-extended 32-bit value otherwise. This
// differs from both GetReg64 (always verbatim 64-bit) and GetReg32 (always
// truncate-then-extend): the width itself is decided by Is64BitMode.
func (c *CPU) GetRegNatural(r uint8) uint64 {
	if c.Is64BitMode() {
		return c.GetReg64(r)
	}
	return uint64(c.GetReg32(r))
}

// SetRegNatural stores val into GPR r at the CPU's current operating width,
// sign-extending to 64 bits in 32-bit mode so the register always holds a
// canonical value for the mode it was written in.
func (c *CPU) SetRegNatural(r uint8, val uint64) {
	if c.Is64BitMode() {
		c.SetReg64(r, val)
		return
	}
	c.SetReg32(r, int32(uint32(val)))
}

// GetHINatural/GetLONatural read HI/LO at the CPU's current operating width.
// MFHI/MFLO must go through these, not GetHI64/GetLO64 directly: in Kernel
// 32-bit mode (KX=0) DMULT/DDIV are still reachable via gateDword, and can
// leave HI/LO holding a 64-bit value a 32-bit-mode MFHI/MFLO must truncate
// and re-sign-extend rather than expose verbatim.
func (c *CPU) GetHINatural() uint64 {
	if c.Is64BitMode() {
		return c.GetHI64()
	}
	return uint64(int64(int32(uint32(c.GetHI64()))))
}

func (c *CPU) GetLONatural() uint64 {
	if c.Is64BitMode() {
		return c.GetLO64()
	}
	return uint64(int64(int32(uint32(c.GetLO64()))))
}

// SetHINatural/SetLONatural write HI/LO at the CPU's current operating
// width, mirroring GetHINatural/GetLONatural.
func (c *CPU) SetHINatural(val uint64) {
	if c.Is64BitMode() {
		c.SetHI64(val)
		return
	}
	c.SetHI32(int32(uint32(val)))
}

func (c *CPU) SetLONatural(val uint64) {
	if c.Is64BitMode() {
		c.SetLO64(val)
		return
	}
	c.SetLO32(int32(uint32(val)))
}

// Mode returns the CPU's current privilege mode, read from CP0 Status.
func (c *CPU) Mode() Mode { return c.cop0.Mode() }

// Is64BitMode reports whether the current mode's width bit (KX/SX/UX) is set.
func (c *CPU) Is64BitMode() bool { return c.cop0.Is64BitMode() }

// SetPendingBranch arms the delay-slot mechanism: target becomes the next
// PC once the instruction immediately after this one (the delay slot) has
// executed. Calling this a second time before it is consumed is a handler
// bug — MIPS III forbids a branch in a delay slot — and StepForward's
// caller is expected to have rejected that shape already.
func (c *CPU) SetPendingBranch(target uint64) {
	c.branchTarget = target
	c.hasBranch = true
}

// takePendingBranch clears and returns the armed branch, if any. Used only
// by StepForward.
func (c *CPU) takePendingBranch() (uint64, bool) {
	target, ok := c.branchTarget, c.hasBranch
	c.hasBranch = false
	return target, ok
}

// branchTargetFor computes a PC-relative branch target: PC + 4 + (offset
// sign-extended and scaled by 4). The +4 is deliberate — it accounts for
// the delay slot the branch itself occupies, not an off-by-one — and must
// not be simplified to "PC + offset*4".
func branchTargetFor(pc uint64, instr Instr) uint64 {
	offset := instr.ImmS() << 2
	return uint64(int64(pc) + 4 + offset)
}

// jumpTargetFor computes a J-type absolute jump target: (PC+4) with its low
// 28 bits cleared, combined with the instruction's 26-bit target field
// shifted left 2.
func jumpTargetFor(pc uint64, instr Instr) uint64 {
	return (uint64(int64(pc)+4) &^ 0xFFF_FFFF) | (uint64(instr.Target()) << 2)
}
