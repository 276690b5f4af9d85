package vr4300

import "testing"

func TestInitCop0ResetState(t *testing.T) {
	c := InitCop0()
	if !c.erl() {
		t.Error("reset Status.ERL must be 1")
	}
	if c.status&(1<<statusDS_BEV) == 0 {
		t.Error("reset Status.BEV must be 1")
	}
	if c.ReadConfig()&(1<<configBE) == 0 {
		t.Error("reset Config.BE must be 1")
	}
}

func TestStatusReservedBitMasked(t *testing.T) {
	c := InitCop0()
	c.WriteStatus(0xFFFF_FFFF)
	if c.ReadStatus()&statusRFUMask != 0 {
		t.Error("reserved bit 23 must read back zero")
	}
}

func TestConfigConstantBitsSurviveWrite(t *testing.T) {
	c := InitCop0()
	c.WriteConfig(0)
	if c.ReadConfig() != configConstVal {
		t.Errorf("ReadConfig() = %#x, want constant bits %#x", c.ReadConfig(), configConstVal)
	}
}

func TestModeDerivation(t *testing.T) {
	c := InitCop0()
	// Reset state has ERL=1, so mode is Kernel regardless of KSU.
	if c.Mode() != ModeKernel {
		t.Fatalf("reset mode = %v, want Kernel", c.Mode())
	}

	c.status = 0 // clear ERL/EXL, KSU defaults to 0 (Kernel)
	if c.Mode() != ModeKernel {
		t.Errorf("KSU=0 mode = %v, want Kernel", c.Mode())
	}

	c.status = uint32(1) << statusKSU // KSU = 01 = Supervisor
	if c.Mode() != ModeSupervisor {
		t.Errorf("KSU=1 mode = %v, want Supervisor", c.Mode())
	}

	c.status = uint32(2) << statusKSU // KSU = 10 = User
	if c.Mode() != ModeUser {
		t.Errorf("KSU=2 mode = %v, want User", c.Mode())
	}
}

func TestIsBigEndianFlipsOnlyInUserMode(t *testing.T) {
	c := InitCop0()
	c.config = 1 << configBE // BE=1
	c.status = uint32(2)<<statusKSU | 1<<statusRE // User mode, RE=1

	if c.IsBigEndian() {
		t.Error("User mode with RE set should flip BE=1 to little-endian")
	}

	c.status = 0 // Kernel mode, RE has no effect there
	if !c.IsBigEndian() {
		t.Error("Kernel mode should see BE=1 unflipped")
	}
}

func TestIsKseg0Cached(t *testing.T) {
	c := InitCop0()
	if !c.IsKseg0Cached() {
		t.Error("reset Config.K0 should default to cached (0 != 0b010)")
	}
	c.config = 0b010 // K0 = Uncached
	if c.IsKseg0Cached() {
		t.Error("Config.K0 = 0b010 should read as uncached")
	}
}

func TestCop0ReadWriteRoundTrip(t *testing.T) {
	c := InitCop0()
	c.Write(Cop0BadVAddr, 0xDEADBEEF)
	if got := c.Read(Cop0BadVAddr); got != 0xDEADBEEF {
		t.Errorf("BadVAddr round-trip = %#x, want 0xdeadbeef", got)
	}
}

func TestRaiseExceptionSetsEPCAndEXL(t *testing.T) {
	c := InitCop0()
	c.RaiseException(ExcIntegerOverflow, 0x8000_1000, false)
	if !c.exl() {
		t.Error("RaiseException must set Status.EXL")
	}
	if c.epc != 0x8000_1000 {
		t.Errorf("EPC = %#x, want 0x80001000", c.epc)
	}
}

func TestRaiseExceptionInDelaySlotBacksUpEPC(t *testing.T) {
	c := InitCop0()
	c.RaiseException(ExcIntegerOverflow, 0x8000_1004, true)
	if c.epc != 0x8000_1000 {
		t.Errorf("EPC in delay slot = %#x, want 0x80001000 (pc-4)", c.epc)
	}
}
