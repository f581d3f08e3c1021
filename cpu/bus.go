package cpu

// AddressBus is the single channel between the CPU and physical memory.
// It owns the one Memory instance for the machine's lifetime and models the
// multiplexed address/data lines: an address is latched first, then a byte
// is transferred at that address.
type AddressBus struct {
	address uint32
	memory  *Memory
}

// NewAddressBus creates the bus together with its memory.
func NewAddressBus() *AddressBus {
	return &AddressBus{
		memory: NewMemory(),
	}
}

// SetAddress latches the target address for the next transfer. No transfer
// happens yet; this is the "address valid" phase of a bus cycle.
func (b *AddressBus) SetAddress(addr uint32) {
	b.address = addr
}

// Read transfers one byte from memory at the latched address.
func (b *AddressBus) Read() byte {
	return b.memory.Read(b.address)
}

// Write transfers one byte to memory at the latched address.
func (b *AddressBus) Write(value byte) {
	b.memory.Write(b.address, value)
}
