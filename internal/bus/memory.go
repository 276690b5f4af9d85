// Package bus provides system-interconnect implementations satisfying
// vr4300.Bus: a flat physical memory and a logging decorator around one.
package bus

// FlatMemory is a contiguous block of physical memory addressed from zero,
// standing in for everything behind CKSEG0/CKSEG1 in a real N64 (RDRAM,
// cartridge ROM, PIF, ...). It implements vr4300.Bus directly; callers that
// want several regions at different physical bases compose multiple
// FlatMemory values behind their own dispatcher, which is outside this
// package's scope.
type FlatMemory struct {
	Data []byte
}

// NewFlatMemory returns a zeroed FlatMemory of size bytes.
func NewFlatMemory(size uint32) *FlatMemory {
	return &FlatMemory{Data: make([]byte, size)}
}

// ReadWord reads the 4 raw bytes at paddr, in ascending address order. It
// reports false rather than panicking on misalignment or an out-of-range
// address, matching the rest of this interpreter's refusal to ever crash
// on a bad address. This memory holds no opinion on endianness: the bytes
// come back exactly as stored, and interpreting them as a 32-bit value is
// the caller's job (vr4300's bus layer does this per Cop0.IsBigEndian()).
func (m *FlatMemory) ReadWord(paddr uint32) ([4]byte, bool) {
	if !m.aligned(paddr) || !m.inRange(paddr) {
		return [4]byte{}, false
	}
	var word [4]byte
	copy(word[:], m.Data[paddr:paddr+4])
	return word, true
}

// WriteWord stores the 4 raw bytes of word at paddr, in ascending address
// order, exactly as given — no endianness swap happens here.
func (m *FlatMemory) WriteWord(paddr uint32, word [4]byte) bool {
	if !m.aligned(paddr) || !m.inRange(paddr) {
		return false
	}
	copy(m.Data[paddr:paddr+4], word[:])
	return true
}

// ReadByte/WriteByte give the load/store family finer granularity than a
// full word, for when LB/LBU/SB and friends move beyond decode's current
// Bug stub.
func (m *FlatMemory) ReadByte(paddr uint32) (byte, bool) {
	if !m.inRange1(paddr) {
		return 0, false
	}
	return m.Data[paddr], true
}

func (m *FlatMemory) WriteByte(paddr uint32, val byte) bool {
	if !m.inRange1(paddr) {
		return false
	}
	m.Data[paddr] = val
	return true
}

func (m *FlatMemory) aligned(paddr uint32) bool { return paddr%4 == 0 }

func (m *FlatMemory) inRange(paddr uint32) bool {
	return uint64(paddr)+4 <= uint64(len(m.Data))
}

func (m *FlatMemory) inRange1(paddr uint32) bool {
	return uint64(paddr) < uint64(len(m.Data))
}
