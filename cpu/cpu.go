package cpu

// Mode selects how the CPU signals bus control.
type Mode int

const (
	// Minimum mode: the CPU drives the memory and I/O control signals
	// itself.
	Minimum Mode = iota
	// Maximum mode: control is encoded on three status lines for an
	// external 8288 bus controller, freeing pins to coordinate multiple
	// processors.
	Maximum
)

// CPU is the whole machine: the execution unit's register file and the bus
// interface unit, which owns the bus and the memory behind it. The mode is
// a plain tag; bus-control signaling itself is not modeled.
type CPU struct {
	// Mode is the bus-control signaling mode.
	Mode Mode
	// EU is the execution unit register file.
	EU *ExecutionUnit
	// BIU is the bus interface unit.
	BIU *BusInterfaceUnit
}

// New powers on a machine in the given mode: all registers zero, the full
// 1 MiB of memory allocated and cleared.
func New(mode Mode) *CPU {
	return &CPU{
		Mode: mode,
		EU:   NewExecutionUnit(),
		BIU:  NewBusInterfaceUnit(NewAddressBus()),
	}
}

// LoadCode writes a program image into memory at seg:offset, one bus cycle
// per byte, and points CS:IP at its first byte.
func (c *CPU) LoadCode(seg, offset uint16, code []byte) {
	for i, value := range code {
		c.BIU.WriteByte(physical(seg, offset)+uint32(i), value)
	}
	c.BIU.CS = seg
	c.BIU.IP = offset
}
