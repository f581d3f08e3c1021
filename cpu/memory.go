package cpu

// AddressSpaceSize is the size of the physical address space: 1 MiB,
// the full range reachable by a 20-bit address.
const AddressSpaceSize = 0x100000

// Memory is the flat physical memory array. It is pure storage: one byte
// slice covering the whole address space, indexed by a 20-bit physical
// address carried in a uint32. Multi-byte values are stored little-endian,
// least significant byte at the lower address.
type Memory struct {
	data []byte
}

// NewMemory allocates the full address space, zero-filled.
func NewMemory() *Memory {
	return &Memory{
		data: make([]byte, AddressSpaceSize),
	}
}

// Read returns the byte at the given physical address. Addresses must
// already be in range; an out-of-range address is a bug in the caller and
// panics rather than wrapping.
func (m *Memory) Read(addr uint32) byte {
	return m.data[addr]
}

// Write stores a byte at the given physical address.
func (m *Memory) Write(addr uint32, value byte) {
	m.data[addr] = value
}
