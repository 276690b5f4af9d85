// Command vr4300run loads a boot descriptor and free-runs the interpreter
// against it until it halts, is interrupted, or exhausts its step budget.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"

	"vr4300/internal/bootconfig"
	"vr4300/internal/bus"
	"vr4300/internal/vr4300"
)

func main() {
	verbose := flag.Bool("v", false, "enable verbose logging")
	bootPath := flag.String("boot", "", "path to a boot descriptor (YAML)")
	memoryFlag := flag.Uint64("memory", 1<<22, "physical memory size in bytes")
	stepsFlag := flag.Int("steps", 0, "override the boot descriptor's step budget (0 = use descriptor)")
	flag.Parse()

	if *bootPath == "" {
		log.Fatal("vr4300run: -boot is required")
	}

	boot, err := bootconfig.Load(*bootPath)
	if err != nil {
		log.Fatalf("vr4300run: %v", err)
	}
	steps := boot.Steps
	if *stepsFlag != 0 {
		steps = *stepsFlag
	}
	if steps <= 0 {
		log.Fatal("vr4300run: step budget must be positive (set -steps or boot.steps)")
	}

	printIfVerbose(*verbose, "allocating %d bytes of physical memory", *memoryFlag)
	mem := bus.NewFlatMemory(uint32(*memoryFlag))

	image, err := os.ReadFile(boot.Image)
	if err != nil {
		log.Fatalf("vr4300run: read image %s: %v", boot.Image, err)
	}
	copy(mem.Data[boot.LoadAt:], image)

	var sys vr4300.Bus = mem
	if boot.Verbose || *verbose {
		sys = bus.NewTraceBus(mem, log.New(os.Stderr, "bus: ", 0))
	}

	cpu := vr4300.NewCPU()
	cpu.SetPC(boot.PC)

	done := make(chan struct{})
	stop := make(chan struct{})
	var failure vr4300.Outcome
	go func() {
		defer close(done)
		bar := progressbar.Default(int64(steps), "running")
		for i := 0; i < steps; i++ {
			select {
			case <-stop:
				return
			default:
			}
			out := vr4300.StepForward(cpu, sys)
			_ = bar.Add(1)
			if out.IsBug() {
				failure = out
				return
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		printIfVerbose(*verbose, "signal received, stopping after current step")
		close(stop)
		<-done
	case <-done:
	}

	if failure.IsBug() {
		log.Fatalf("vr4300run: stopped on unimplemented behaviour: %s\n%s", failure.Message(), failure.Stack())
	}
	printIfVerbose(*verbose, "final PC: 0x%016x", cpu.PC())
}

func printIfVerbose(verbose bool, format string, v ...interface{}) {
	if verbose {
		log.Printf(format, v...)
	}
}
