package cpu

// ExecutionUnit is the register file: the four general-purpose registers,
// the four index/pointer registers and the flags. It holds state for the
// decode/execute logic to mutate; no instruction or ALU semantics live here.
type ExecutionUnit struct {
	// AX is the accumulator register.
	AX Register
	// BX is the base register.
	BX Register
	// CX is the count register.
	CX Register
	// DX is the data register.
	DX Register

	// SP points to the top of the stack.
	SP uint16
	// BP points to the base of the current stack frame.
	BP uint16
	// SI is the source index for string operations.
	SI uint16
	// DI is the destination index for string operations.
	DI uint16

	// Flags is the status register.
	Flags Flags
}

// NewExecutionUnit returns a register file with every register and flag
// zeroed, the power-on state.
func NewExecutionUnit() *ExecutionUnit {
	return &ExecutionUnit{}
}
