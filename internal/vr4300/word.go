package vr4300

// Instr wraps a raw 32-bit MIPS III instruction word and exposes its fields
// by name. It never mutates; every accessor is a pure bit extraction.
type Instr uint32

// Primary opcodes (bits 31:26), written in octal to mirror the encoding
// tables in the MIPS III manual.
const (
	opSPECIAL uint8 = 0o00
	opREGIMM  uint8 = 0o01
	opJ       uint8 = 0o02
	opJAL     uint8 = 0o03
	opBEQ     uint8 = 0o04
	opBNE     uint8 = 0o05
	opBLEZ    uint8 = 0o06
	opBGTZ    uint8 = 0o07
	opADDI    uint8 = 0o10
	opADDIU   uint8 = 0o11
	opSLTI    uint8 = 0o12
	opSLTIU   uint8 = 0o13
	opANDI    uint8 = 0o14
	opORI     uint8 = 0o15
	opXORI    uint8 = 0o16
	opLUI     uint8 = 0o17
	opCOP0    uint8 = 0o20
	opCOP1    uint8 = 0o21
	opCOP2    uint8 = 0o22
	opBEQL    uint8 = 0o24
	opBNEL    uint8 = 0o25
	opBLEZL   uint8 = 0o26
	opBGTZL   uint8 = 0o27
	opDADDI   uint8 = 0o30
	opDADDIU  uint8 = 0o31
	opLDL     uint8 = 0o32
	opLDR     uint8 = 0o33
	opLB      uint8 = 0o40
	opLH      uint8 = 0o41
	opLWL     uint8 = 0o42
	opLW      uint8 = 0o43
	opLBU     uint8 = 0o44
	opLHU     uint8 = 0o45
	opLWR     uint8 = 0o46
	opLWU     uint8 = 0o47
	opSB      uint8 = 0o50
	opSH      uint8 = 0o51
	opSWL     uint8 = 0o52
	opSW      uint8 = 0o53
	opSDL     uint8 = 0o54
	opSDR     uint8 = 0o55
	opSWR     uint8 = 0o56
	opLL      uint8 = 0o60
	opLWC1    uint8 = 0o61
	opLWC2    uint8 = 0o62
	opLLD     uint8 = 0o64
	opLDC1    uint8 = 0o65
	opLDC2    uint8 = 0o66
	opLD      uint8 = 0o67
	opSC      uint8 = 0o70
	opSWC1    uint8 = 0o71
	opSWC2    uint8 = 0o72
	opSCD     uint8 = 0o74
	opSDC1    uint8 = 0o75
	opSDC2    uint8 = 0o76
	opSD      uint8 = 0o77
)

// SPECIAL funct codes (bits 5:0, opcode == opSPECIAL).
const (
	fnSLL     uint8 = 0o00
	fnSRL     uint8 = 0o02
	fnSRA     uint8 = 0o03
	fnSLLV    uint8 = 0o04
	fnSRLV    uint8 = 0o06
	fnSRAV    uint8 = 0o07
	fnJR      uint8 = 0o10
	fnJALR    uint8 = 0o11
	fnSYSCALL uint8 = 0o14
	fnBREAK   uint8 = 0o15
	fnSYNC    uint8 = 0o17
	fnMFHI    uint8 = 0o20
	fnMTHI    uint8 = 0o21
	fnMFLO    uint8 = 0o22
	fnMTLO    uint8 = 0o23
	fnDSLLV   uint8 = 0o24
	fnDSRLV   uint8 = 0o26
	fnDSRAV   uint8 = 0o27
	fnMULT    uint8 = 0o30
	fnMULTU   uint8 = 0o31
	fnDIV     uint8 = 0o32
	fnDIVU    uint8 = 0o33
	fnDMULT   uint8 = 0o34
	fnDMULTU  uint8 = 0o35
	fnDDIV    uint8 = 0o36
	fnDDIVU   uint8 = 0o37
	fnADD     uint8 = 0o40
	fnADDU    uint8 = 0o41
	fnSUB     uint8 = 0o42
	fnSUBU    uint8 = 0o43
	fnAND     uint8 = 0o44
	fnOR      uint8 = 0o45
	fnXOR     uint8 = 0o46
	fnNOR     uint8 = 0o47
	fnSLT     uint8 = 0o52
	fnSLTU    uint8 = 0o53
	fnDADD    uint8 = 0o54
	fnDADDU   uint8 = 0o55
	fnDSUB    uint8 = 0o56
	fnDSUBU   uint8 = 0o57
	fnTGE     uint8 = 0o60
	fnTGEU    uint8 = 0o61
	fnTLT     uint8 = 0o62
	fnTLTU    uint8 = 0o63
	fnTEQ     uint8 = 0o64
	fnTNE     uint8 = 0o66
	fnDSLL    uint8 = 0o70
	fnDSRL    uint8 = 0o72
	fnDSRA    uint8 = 0o73
	fnDSLL32  uint8 = 0o74
	fnDSRL32  uint8 = 0o76
	fnDSRA32  uint8 = 0o77
)

// REGIMM rt-field codes (opcode == opREGIMM).
const (
	riBLTZ    uint8 = 0o00
	riBGEZ    uint8 = 0o01
	riBLTZL   uint8 = 0o02
	riBGEZL   uint8 = 0o03
	riTGEI    uint8 = 0o10
	riTGEIU   uint8 = 0o11
	riTLTI    uint8 = 0o12
	riTLTIU   uint8 = 0o13
	riTEQI    uint8 = 0o14
	riTNEI    uint8 = 0o16
	riBLTZAL  uint8 = 0o20
	riBGEZAL  uint8 = 0o21
	riBLTZALL uint8 = 0o22
	riBGEZALL uint8 = 0o23
)

// Coprocessor rs-field codes (opcode == opCOP0/opCOP1/opCOP2).
const (
	copMF uint8 = 0o00
	copDMF uint8 = 0o01
	copCF uint8 = 0o02
	copMT uint8 = 0o04
	copDMT uint8 = 0o05
	copCT uint8 = 0o06
	copBC uint8 = 0o10
)

// BC rt-field codes (rs == copBC).
const (
	bcF  uint8 = 0o00
	bcT  uint8 = 0o01
	bcFL uint8 = 0o02
	bcTL uint8 = 0o03
)

// CP0 function-field codes used when rs selects the TLB/ERET sub-group
// (rs == 0o20, i.e. bit 4 of rs set and not one of the MF/MT/BC forms).
const (
	copFunctTLBR  uint8 = 0o01
	copFunctTLBWI uint8 = 0o02
	copFunctTLBWR uint8 = 0o06
	copFunctTLBP  uint8 = 0o10
	copFunctERET  uint8 = 0o30
)

// Opcode returns bits 31:26.
func (i Instr) Opcode() uint8 { return uint8((i >> 26) & 0x3F) }

// Rs returns bits 25:21.
func (i Instr) Rs() uint8 { return uint8((i >> 21) & 0x1F) }

// Rt returns bits 20:16.
func (i Instr) Rt() uint8 { return uint8((i >> 16) & 0x1F) }

// Rd returns bits 15:11.
func (i Instr) Rd() uint8 { return uint8((i >> 11) & 0x1F) }

// Sa returns bits 10:6, the shift amount.
func (i Instr) Sa() uint8 { return uint8((i >> 6) & 0x1F) }

// Funct returns bits 5:0.
func (i Instr) Funct() uint8 { return uint8(i & 0x3F) }

// ImmU returns the 16-bit immediate, zero-extended.
func (i Instr) ImmU() uint16 { return uint16(i & 0xFFFF) }

// ImmS returns the 16-bit immediate sign-extended to 64 bits.
func (i Instr) ImmS() int64 { return int64(int16(i & 0xFFFF)) }

// Target returns bits 25:0, the jump target field.
func (i Instr) Target() uint32 { return uint32(i) & 0x3FFFFFF }

// Sel returns bits 2:0, the coprocessor register selector used by MTC0/MFC0
// encodings that carry one (the VR4300 itself ignores it for CP0, but the
// field is part of the encoding).
func (i Instr) Sel() uint8 { return uint8(i & 0x7) }
