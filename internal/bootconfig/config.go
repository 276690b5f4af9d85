// Package bootconfig loads the small YAML descriptor the cmd/vr4300run and
// cmd/vr4300step drivers use to describe how to seed a run: which image to
// load, where to load it, and where to set the initial PC.
package bootconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Boot describes one emulation run's starting conditions.
type Boot struct {
	Image  string `yaml:"image"`
	LoadAt uint32 `yaml:"load_at"`
	PC     uint64 `yaml:"pc"`
	Steps  int    `yaml:"steps"`
	Verbose bool  `yaml:"verbose"`
}

// defaultLoadAt is CKSEG0's base, the conventional place a freestanding
// kernel image expects to run from.
const defaultLoadAt = 0x8000_0000

// Load reads and parses a boot descriptor from path, filling in defaults for
// any field the file omits.
func Load(path string) (Boot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Boot{}, fmt.Errorf("bootconfig: read %s: %w", path, err)
	}

	b := Boot{LoadAt: defaultLoadAt}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Boot{}, fmt.Errorf("bootconfig: parse %s: %w", path, err)
	}
	if b.Image == "" {
		return Boot{}, fmt.Errorf("bootconfig: %s: image is required", path)
	}
	if b.PC == 0 {
		b.PC = 0xFFFF_FFFF_8000_0000 | uint64(b.LoadAt&0x7FFF_FFFF)
	}
	return b, nil
}
