package vr4300

import "encoding/binary"

// Bus is the system interconnect a BusCore-level CPU reads instructions and
// data through. Implementations do no address translation: vr4300 only
// hands them a physical address already resolved by Translate.
// Words cross the bus as raw bytes, in ascending address order, with no
// opinion on endianness: interpreting them is always this package's job,
// done per Cop0.IsBigEndian() at the point of use, never cached onto the
// value itself. internal/bus provides the reference FlatMemory
// implementation.
type Bus interface {
	ReadWord(paddr uint32) ([4]byte, bool)
	WriteWord(paddr uint32, word [4]byte) bool
}

// wordFromBytes interprets raw as a 32-bit value per the given endianness.
func wordFromBytes(raw [4]byte, bigEndian bool) uint32 {
	if bigEndian {
		return binary.BigEndian.Uint32(raw[:])
	}
	return binary.LittleEndian.Uint32(raw[:])
}

// fetch reads the 32-bit instruction word at the CPU's current PC. An
// unaligned PC and a cached-segment access are both unmodelled rather than
// architected in this pass, so both are reported as Bug, not Exception —
// matching the rest of the load/store path (see loadWord). fetch never
// advances PC; StepForward is responsible for that.
func fetch(c *CPU, bus Bus) (Instr, Outcome) {
	pc := c.PC()
	if pc%4 != 0 {
		return 0, Bug("fetch: unaligned PC (address error exception not modelled)")
	}

	paddr, cached, out := Translate(pc, c.cop0)
	if !out.IsHappy() {
		return 0, out
	}
	if cached {
		return 0, Bug("fetch: cached access (bus models uncached traffic only)")
	}

	raw, ok := bus.ReadWord(paddr)
	if !ok {
		return 0, Bug("fetch: bus rejected an in-segment physical address")
	}
	return Instr(wordFromBytes(raw, c.cop0.IsBigEndian())), Happy()
}

// loadWord reads a 32-bit data word from vaddr, translating first. It is
// the only load path LW (the one fully implemented load) requires; the
// other load/store opcodes are recognized by decode but reported as Bug.
// Unaligned and cached accesses are Bug, not Exception, for the same
// reason as fetch.
func loadWord(c *CPU, bus Bus, vaddr uint64) (uint32, Outcome) {
	if vaddr%4 != 0 {
		return 0, Bug("loadWord: unaligned address (address error exception not modelled)")
	}
	paddr, cached, out := Translate(vaddr, c.cop0)
	if !out.IsHappy() {
		return 0, out
	}
	if cached {
		return 0, Bug("loadWord: cached access (bus models uncached traffic only)")
	}
	raw, ok := bus.ReadWord(paddr)
	if !ok {
		return 0, Bug("loadWord: bus rejected an in-segment physical address")
	}
	return wordFromBytes(raw, c.cop0.IsBigEndian()), Happy()
}
