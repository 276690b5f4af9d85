package vr4300

// Kernel segment boundaries, in the CPU's 64-bit virtual address space.
// Only the segments a MIPS III kernel can actually be executing from without
// the TLB are resolved here; everything else is unimplemented and reported
// as a Bug rather than guessed at.
const (
	xkuseg   uint64 = 0x0000_0000_0000_0000
	xksseg   uint64 = 0x4000_0000_0000_0000
	xkphys   uint64 = 0x8000_0000_0000_0000
	xkseg    uint64 = 0xC000_0000_0000_0000
	ckseg0   uint64 = 0xFFFF_FFFF_8000_0000
	ckseg1   uint64 = 0xFFFF_FFFF_A000_0000
	ckssseg  uint64 = 0xFFFF_FFFF_C000_0000
	ckseg3   uint64 = 0xFFFF_FFFF_E000_0000
	segEnd   uint64 = 0xFFFF_FFFF_FFFF_FFFF
)

// Translate maps a virtual address to a physical one using only the static
// segment arithmetic available without a TLB. Outside 64-bit mode the low
// 32 bits of vaddr are first sign-extended to 64 bits. Only the
// Kernel map is implemented: in Supervisor or User mode Translate reports
// Bug, and so does every Kernel segment other than CKSEG0/CKSEG1.
func Translate(vaddr uint64, cp0 *Cop0) (paddr uint32, cached bool, out Outcome) {
	if !cp0.Is64BitMode() {
		vaddr = uint64(int64(int32(uint32(vaddr))))
	}
	if cp0.Mode() != ModeKernel {
		return 0, false, Bug("translate: called outside Kernel mode")
	}

	switch {
	case vaddr >= ckseg0 && vaddr < ckseg1:
		return uint32(vaddr - ckseg0), cp0.IsKseg0Cached(), Happy()

	case vaddr >= ckseg1 && vaddr < ckssseg:
		return uint32(vaddr - ckseg1), false, Happy()

	case vaddr >= xkuseg && vaddr < xksseg:
		return 0, false, Bug("translate: xkuseg requires the TLB, not implemented")

	case vaddr >= xksseg && vaddr < xkphys:
		return 0, false, Bug("translate: xksseg requires the TLB, not implemented")

	case vaddr >= xkphys && vaddr < xkseg:
		return 0, false, Bug("translate: xkphys direct-mapped access not implemented")

	case vaddr >= xkseg && vaddr < ckseg0:
		return 0, false, Bug("translate: xkseg requires the TLB, not implemented")

	case vaddr >= ckssseg && vaddr < ckseg3:
		return 0, false, Bug("translate: ckssseg requires the TLB, not implemented")

	case vaddr >= ckseg3:
		return 0, false, Bug("translate: ckseg3 requires the TLB, not implemented")

	default:
		return 0, false, Bug("translate: address fell through all segment checks")
	}
}
