package cpu

// Flags is the status register as a bank of independent bits. Each field
// stands alone: setting one never disturbs another, and nothing here
// computes a flag from an operation result. That is the execution logic's
// job; this type only holds the bits.
type Flags struct {
	// Carry is set when an operation carried out of, or borrowed into,
	// the most significant bit. Rotate instructions use it to isolate
	// a bit.
	Carry bool
	// Parity is set when the low byte of a result has an even number of
	// set bits.
	Parity bool
	// AuxiliaryCarry is set on a carry from the low nibble to the high
	// nibble, or the matching borrow. Used by decimal arithmetic.
	AuxiliaryCarry bool
	// Zero is set when a result is zero.
	Zero bool
	// Sign is set when the most significant bit of a result is set.
	Sign bool
	// Overflow is set when a signed result does not fit the destination.
	Overflow bool
	// InterruptEnable gates external maskable interrupts. Non-maskable
	// and internal interrupts ignore it.
	InterruptEnable bool
	// Direction makes string operations decrement the index registers
	// when set, increment when clear.
	Direction bool
	// Trap requests an interrupt after every instruction, for
	// single-step debugging.
	Trap bool
}
