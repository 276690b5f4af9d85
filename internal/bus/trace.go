package bus

import "log"

// Backing is the minimal contract TraceBus wraps: vr4300.Bus itself, kept
// local to this package so bus does not need to import vr4300.
type Backing interface {
	ReadWord(paddr uint32) ([4]byte, bool)
	WriteWord(paddr uint32, word [4]byte) bool
}

// TraceBus decorates a Backing with a log line per access, for
// cmd/vr4300run's verbose mode. It adds no behaviour of its own:
// every call is forwarded unchanged and the return value passed straight
// through.
type TraceBus struct {
	Backing Backing
	Logger  *log.Logger
}

// NewTraceBus returns a TraceBus over backing, logging through logger.
func NewTraceBus(backing Backing, logger *log.Logger) *TraceBus {
	return &TraceBus{Backing: backing, Logger: logger}
}

func (t *TraceBus) ReadWord(paddr uint32) ([4]byte, bool) {
	word, ok := t.Backing.ReadWord(paddr)
	t.Logger.Printf("read32  0x%08x -> % x ok=%v", paddr, word, ok)
	return word, ok
}

func (t *TraceBus) WriteWord(paddr uint32, word [4]byte) bool {
	ok := t.Backing.WriteWord(paddr, word)
	t.Logger.Printf("write32 0x%08x <- % x ok=%v", paddr, word, ok)
	return ok
}
