package cpu_test

import (
	"testing"

	"github.com/Urethramancer/i8086/cpu"
)

// Each flag bit must be settable and readable without disturbing any other.
func TestFlagIndependence(t *testing.T) {
	bits := []struct {
		name string
		bit  func(*cpu.Flags) *bool
	}{
		{"Carry", func(f *cpu.Flags) *bool { return &f.Carry }},
		{"Parity", func(f *cpu.Flags) *bool { return &f.Parity }},
		{"AuxiliaryCarry", func(f *cpu.Flags) *bool { return &f.AuxiliaryCarry }},
		{"Zero", func(f *cpu.Flags) *bool { return &f.Zero }},
		{"Sign", func(f *cpu.Flags) *bool { return &f.Sign }},
		{"Overflow", func(f *cpu.Flags) *bool { return &f.Overflow }},
		{"InterruptEnable", func(f *cpu.Flags) *bool { return &f.InterruptEnable }},
		{"Direction", func(f *cpu.Flags) *bool { return &f.Direction }},
		{"Trap", func(f *cpu.Flags) *bool { return &f.Trap }},
	}

	for i, tc := range bits {
		t.Run(tc.name, func(t *testing.T) {
			var f cpu.Flags
			*tc.bit(&f) = true
			if !*tc.bit(&f) {
				t.Fatalf("%s did not read back true", tc.name)
			}
			for j, other := range bits {
				if j != i && *other.bit(&f) {
					t.Errorf("setting %s disturbed %s", tc.name, other.name)
				}
			}
			*tc.bit(&f) = false
			if *tc.bit(&f) {
				t.Fatalf("%s did not read back false", tc.name)
			}
		})
	}
}
