package cpu_test

import (
	"testing"

	"github.com/Urethramancer/i8086/cpu"
)

func TestNewPowerOnState(t *testing.T) {
	c := cpu.New(cpu.Minimum)
	if c.Mode != cpu.Minimum {
		t.Errorf("expected Minimum mode, got %v", c.Mode)
	}
	if c.BIU.CS != 0 || c.BIU.IP != 0 || c.BIU.ES != 0 || c.BIU.SS != 0 || c.BIU.DS != 0 {
		t.Error("segments and IP must power on zeroed")
	}
	if c.EU.SP != 0 || c.EU.BP != 0 || c.EU.SI != 0 || c.EU.DI != 0 {
		t.Error("index registers must power on zeroed")
	}
	if c.EU.AX.Get() != 0 || c.EU.Flags.Carry {
		t.Error("AX and flags must power on zeroed")
	}
	if got := c.BIU.ReadByte(0); got != 0 {
		t.Errorf("memory must power on zeroed, got %02X", got)
	}
}

func TestLoadCode(t *testing.T) {
	c := cpu.New(cpu.Maximum)
	code := []byte{0xB8, 0x42, 0x00}
	c.LoadCode(0x1000, 0x0100, code)

	if c.BIU.CS != 0x1000 || c.BIU.IP != 0x0100 {
		t.Fatalf("expected CS:IP 1000:0100, got %04X:%04X", c.BIU.CS, c.BIU.IP)
	}
	if got := c.BIU.FetchAddress(); got != 0x10100 {
		t.Fatalf("expected fetch address 10100, got %05X", got)
	}
	for i, want := range code {
		if got := c.BIU.ReadByte(0x10100 + uint32(i)); got != want {
			t.Errorf("byte %d: expected %02X, got %02X", i, want, got)
		}
	}
}

func TestLoadCodeThenPrefetch(t *testing.T) {
	c := cpu.New(cpu.Minimum)
	code := []byte{0xAC, 0xAA}
	c.LoadCode(0x2000, 0x0000, code)

	c.BIU.Prefetch()
	c.BIU.Prefetch()
	for _, want := range code {
		got, ok := c.BIU.PopInstruction()
		if !ok || got != want {
			t.Errorf("expected %02X, got %02X (ok=%v)", want, got, ok)
		}
	}
}
