package cpu

// BusInterfaceUnit generates every physical address the machine uses and is
// the only component that drives the address bus. It owns the four segment
// registers, the instruction pointer and the prefetch queue.
//
// A physical address is always (segment << 4) + offset, computed in 20
// significant bits. The sum is not masked here: a segment:offset pair that
// reaches past the 20-bit space is legal input, and callers wanting
// wraparound emulation mask the result themselves, matching the hardware.
type BusInterfaceUnit struct {
	// ES is the extra segment, the fixed destination segment for string
	// operations.
	ES uint16
	// CS is the code segment holding the current program.
	CS uint16
	// SS is the stack segment.
	SS uint16
	// DS is the data segment.
	DS uint16
	// IP points to the next instruction byte to fetch.
	IP uint16

	// queue holds prefetched instruction bytes in arrival order.
	queue []byte
	// bus is the machine's address bus. The BIU takes sole ownership at
	// construction; nothing else may issue transfers.
	bus *AddressBus
}

// NewBusInterfaceUnit takes ownership of the address bus. Segments, the
// instruction pointer and the queue start zeroed and empty.
func NewBusInterfaceUnit(bus *AddressBus) *BusInterfaceUnit {
	return &BusInterfaceUnit{
		bus: bus,
	}
}

// segment resolves an addressing mode's segment: the override if one was
// supplied, the mode's default otherwise. The override replaces the
// default outright, it never combines with it.
func (b *BusInterfaceUnit) segment(def uint16, alt *uint16) uint16 {
	if alt != nil {
		return *alt
	}
	return def
}

// physical forms a 20-bit physical address from a segment and an offset.
func physical(seg, offset uint16) uint32 {
	return (uint32(seg) << 4) + uint32(offset)
}

// FetchAddress returns the physical address of the next instruction byte,
// CS:IP. Instruction fetch has no override; the code segment is fixed.
func (b *BusInterfaceUnit) FetchAddress() uint32 {
	return physical(b.CS, b.IP)
}

// StackAddress resolves a stack-pointer-relative offset against SS.
// Stack access has no override.
func (b *BusInterfaceUnit) StackAddress(spOffset uint16) uint32 {
	return physical(b.SS, spOffset)
}

// StringSourceAddress resolves a source-index-relative offset against DS,
// or against alt when a segment override prefix is in effect.
func (b *BusInterfaceUnit) StringSourceAddress(siOffset uint16, alt *uint16) uint32 {
	return physical(b.segment(b.DS, alt), siOffset)
}

// StringDestinationAddress resolves a destination-index-relative offset
// against ES. The string destination segment cannot be overridden, so no
// override parameter exists.
func (b *BusInterfaceUnit) StringDestinationAddress(diOffset uint16) uint32 {
	return physical(b.ES, diOffset)
}

// DataAddress resolves a generic data offset against DS, or against alt
// when a segment override prefix is in effect.
func (b *BusInterfaceUnit) DataAddress(offset uint16, alt *uint16) uint32 {
	return physical(b.segment(b.DS, alt), offset)
}

// BasePointerAddress resolves a BP-relative data offset. BP addressing
// defaults to the stack segment, overridable like generic data access.
func (b *BusInterfaceUnit) BasePointerAddress(offset uint16, alt *uint16) uint32 {
	return physical(b.segment(b.SS, alt), offset)
}

// ReadByte runs one bus read cycle: latch the address, transfer the byte.
func (b *BusInterfaceUnit) ReadByte(addr uint32) byte {
	b.bus.SetAddress(addr)
	return b.bus.Read()
}

// WriteByte runs one bus write cycle at the given address.
func (b *BusInterfaceUnit) WriteByte(addr uint32, value byte) {
	b.bus.SetAddress(addr)
	b.bus.Write(value)
}

// PushInstruction appends a byte to the tail of the prefetch queue,
// modeling a byte arriving from a bus read. The queue is unbounded here;
// keeping it within the hardware's depth is the fetch scheduler's job.
func (b *BusInterfaceUnit) PushInstruction(value byte) {
	b.queue = append(b.queue, value)
}

// PopInstruction removes and returns the oldest queued byte. The second
// return is false when the queue is empty, which is not an error: decode
// is expected to request a refill.
func (b *BusInterfaceUnit) PopInstruction() (byte, bool) {
	if len(b.queue) == 0 {
		return 0, false
	}
	value := b.queue[0]
	b.queue = b.queue[1:]
	return value, true
}

// QueueLen reports how many instruction bytes are waiting for decode.
func (b *BusInterfaceUnit) QueueLen() int {
	return len(b.queue)
}

// Prefetch runs one fetch bus cycle: read the byte at CS:IP, enqueue it
// and advance IP.
func (b *BusInterfaceUnit) Prefetch() {
	b.PushInstruction(b.ReadByte(b.FetchAddress()))
	b.IP++
}
