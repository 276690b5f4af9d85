// Package keystep drives the interactive single-step debugger's keyboard
// loop: a single keypress chooses to step one instruction, run freely, or
// quit.
package keystep

import (
	"fmt"
	"log"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"
)

// Command is one keypress the driver loop recognizes.
type Command int

const (
	CmdStep Command = iota
	CmdRun
	CmdQuit
)

// Reader reads single keypresses from the controlling terminal without
// waiting for Enter, via keyboard.GetSingleKey.
type Reader struct {
	oldState *term.State
	fd       int
}

// Open puts the controlling terminal into raw mode so keypresses arrive
// immediately. Close must be called to restore it.
func Open(fd int) (*Reader, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("keystep: enter raw mode: %w", err)
	}
	return &Reader{oldState: oldState, fd: fd}, nil
}

// Close restores the terminal to its prior state.
func (r *Reader) Close() {
	if err := term.Restore(r.fd, r.oldState); err != nil {
		log.Printf("keystep: restore terminal state: %v", err)
	}
}

// Next blocks for a single keypress and maps it to a Command: 's' or space
// steps one instruction, 'r' runs freely until the next Bug outcome,
// anything else (including Ctrl-C) quits.
func (r *Reader) Next() (Command, error) {
	ch, key, err := keyboard.GetSingleKey()
	if err != nil {
		return CmdQuit, fmt.Errorf("keystep: read key: %w", err)
	}
	if key == keyboard.KeyCtrlC {
		return CmdQuit, nil
	}
	switch ch {
	case 's', ' ':
		return CmdStep, nil
	case 'r':
		return CmdRun, nil
	default:
		return CmdQuit, nil
	}
}
