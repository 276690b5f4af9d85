package vr4300

// gateDword enforces the dword-operation gate: any 64-bit ("D"-prefixed)
// instruction is only permitted in 64-bit mode or Kernel mode (Kernel is
// always 64-bit-capable on the VR4300 regardless of KX). Every D* handler
// must call this before mutating any state.
func gateDword(c *CPU) Outcome {
	if c.Mode() == ModeKernel || c.Is64BitMode() {
		return Happy()
	}
	return Exception(ExcReservedInstruction)
}
