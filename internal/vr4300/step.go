package vr4300

// StepForward executes exactly one instruction: fetch, snapshot and clear
// any branch armed by the previous instruction's delay slot, dispatch, then
// commit the next PC.
//
// Fetch never produces an Exception in this pass: an unaligned PC and a
// cached-segment access are both unmodelled rather than architected here,
// so fetch reports them as Bug (see fetch in bus.go) and StepForward
// propagates that untouched.
//
// When Execute itself returns Exception, the exception is swallowed: no
// CP0 state is recorded (Cop0.RaiseException is not called), PC is not
// vectored or advanced, and the pending-branch snapshot taken before
// dispatch is discarded, not applied. The handler that raised it has
// already returned before mutating any state, so the CPU is left as it was
// before the instruction, and this step still reports Happy to its caller.
// A Bug from Execute is never swallowed: it propagates to the
// caller untouched, since it represents something this core cannot yet
// model at all rather than an architected condition.
func StepForward(c *CPU, bus Bus) Outcome {
	instr, out := fetch(c, bus)
	if !out.IsHappy() {
		return out
	}

	target, hadBranch := c.takePendingBranch()

	out = Execute(c, bus, instr)
	if out.IsBug() {
		return out
	}
	if out.IsException() {
		return Happy()
	}

	if hadBranch {
		c.SetPC(target)
	} else {
		c.SetPC(c.PC() + 4)
	}
	return Happy()
}
