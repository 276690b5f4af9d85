// Command vr4300step is an interactive single-instruction debugger: it
// prints the next instruction about to execute and waits for a keypress
// before committing it, or runs freely until the next Bug outcome.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"vr4300/internal/bootconfig"
	"vr4300/internal/bus"
	"vr4300/internal/keystep"
	"vr4300/internal/vr4300"
)

func main() {
	bootPath := flag.String("boot", "", "path to a boot descriptor (YAML)")
	memoryFlag := flag.Uint64("memory", 1<<22, "physical memory size in bytes")
	flag.Parse()

	if *bootPath == "" {
		log.Fatal("vr4300step: -boot is required")
	}
	boot, err := bootconfig.Load(*bootPath)
	if err != nil {
		log.Fatalf("vr4300step: %v", err)
	}

	mem := bus.NewFlatMemory(uint32(*memoryFlag))
	image, err := os.ReadFile(boot.Image)
	if err != nil {
		log.Fatalf("vr4300step: read image %s: %v", boot.Image, err)
	}
	copy(mem.Data[boot.LoadAt:], image)

	cpu := vr4300.NewCPU()
	cpu.SetPC(boot.PC)

	reader, err := keystep.Open(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("vr4300step: %v", err)
	}
	defer reader.Close()

	running := false
	for {
		paddr, _, tr := vr4300.Translate(cpu.PC(), cpu.Cop0())
		raw, ok := mem.ReadWord(paddr)
		if !tr.IsHappy() || !ok {
			fmt.Printf("\r\n0x%016x: <unreadable>\r\n", cpu.PC())
		} else {
			var word uint32
			if cpu.Cop0().IsBigEndian() {
				word = binary.BigEndian.Uint32(raw[:])
			} else {
				word = binary.LittleEndian.Uint32(raw[:])
			}
			fmt.Printf("\r\n0x%016x: 0x%08x\t%s\r\n", cpu.PC(), word, vr4300.Disassemble(vr4300.Instr(word)))
		}

		if !running {
			fmt.Print("\r\n[s]tep, [r]un, any other key to quit: \r\n")
			cmd, err := reader.Next()
			if err != nil {
				fmt.Printf("\r\n%v\r\n", err)
				return
			}
			switch cmd {
			case keystep.CmdQuit:
				return
			case keystep.CmdRun:
				running = true
			case keystep.CmdStep:
			}
		}

		out := vr4300.StepForward(cpu, mem)
		if out.IsBug() {
			fmt.Printf("\r\nstopped on unimplemented behaviour: %s\r\n", out.Message())
			return
		}
	}
}
