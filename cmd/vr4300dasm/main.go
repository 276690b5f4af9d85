// Command vr4300dasm renders a MIPS III binary (ELF or raw big-endian word
// stream) as textual disassembly using ABI register names.
package main

import (
	"debug/elf"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"vr4300/internal/vr4300"
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("usage: vr4300dasm <mips3_binary_file>")
		return
	}

	fileName := flag.Arg(0)
	file, err := os.Open(fileName)
	if err != nil {
		log.Fatalf("failed to open file: %v", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file: %v", err)
		}
	}()

	if elfFile, err := elf.Open(fileName); err == nil {
		defer func() {
			if err := elfFile.Close(); err != nil {
				log.Printf("failed to close ELF file: %v", err)
			}
		}()
		disassembleELF(elfFile)
		return
	}

	fmt.Println("not an ELF file, treating as raw big-endian binary")
	disassembleRaw(file)
}

func disassembleELF(elfFile *elf.File) {
	fmt.Printf("ELF File: %s\n", elfFile.Machine)
	fmt.Printf("Entry point: 0x%08X\n\n", elfFile.Entry)

	textSection := elfFile.Section(".text")
	if textSection == nil {
		fmt.Println("warning: no .text section found")
		for _, section := range elfFile.Sections {
			if section.Flags&elf.SHF_EXECINSTR != 0 {
				fmt.Printf("found executable section: %s\n", section.Name)
				disassembleSection(section)
			}
		}
		return
	}

	fmt.Printf("Disassembling .text section (0x%08X - 0x%08X):\n", textSection.Addr, textSection.Addr+textSection.Size)
	fmt.Println("=======================================================================")
	disassembleSection(textSection)
}

func disassembleSection(section *elf.Section) {
	data, err := section.Data()
	if err != nil {
		log.Printf("failed to read section %s: %v", section.Name, err)
		return
	}

	addr := section.Addr
	for i := 0; i+4 <= len(data); i += 4 {
		word := binary.BigEndian.Uint32(data[i : i+4])
		fmt.Printf("0x%08X: 0x%08X\t%s\n", addr+uint64(i), word, vr4300.Disassemble(vr4300.Instr(word)))
	}
}

func disassembleRaw(file *os.File) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		log.Fatalf("failed to seek file: %v", err)
	}

	var offset int64
	for {
		var word uint32
		if err := binary.Read(file, binary.BigEndian, &word); err != nil {
			break
		}
		fmt.Printf("0x%08X: 0x%08X\t%s\n", offset, word, vr4300.Disassemble(vr4300.Instr(word)))
		offset += 4
	}
}
